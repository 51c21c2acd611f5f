package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Create 创建评论
func (r *GormCommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// ListByTarget 获取目标的评论列表，按评论时间倒序
func (r *GormCommentRepository) ListByTarget(target model.Target) ([]model.Comment, error) {
	var comments []model.Comment
	err := targetScope(r.db, target).
		Order("created_at DESC, id DESC").Find(&comments).Error
	return comments, err
}

// CountByTarget 统计目标的评论数
func (r *GormCommentRepository) CountByTarget(target model.Target) (int64, error) {
	var count int64
	err := targetScope(r.db.Model(&model.Comment{}), target).Count(&count).Error
	return count, err
}
