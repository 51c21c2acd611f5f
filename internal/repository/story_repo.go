package repository

import (
	"time"

	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormStoryRepository struct {
	db *gorm.DB
}

func NewGormStoryRepository(db *gorm.DB) *GormStoryRepository {
	return &GormStoryRepository{db: db}
}

// Create 创建快拍
func (r *GormStoryRepository) Create(story *model.Story) error {
	return r.db.Create(story).Error
}

// ListActiveByUsers 获取指定用户未过期的快拍，按发布时间倒序。过期行保留不删，只做过滤。
func (r *GormStoryRepository) ListActiveByUsers(userIDs []int64, now time.Time) ([]model.Story, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var stories []model.Story
	err := r.db.Where("user_id IN ? AND expires_at > ?", userIDs, now).
		Order("created_at DESC, id DESC").Find(&stories).Error
	return stories, err
}
