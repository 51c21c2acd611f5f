package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create 创建帖子
func (r *GormPostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// GetByID 根据 ID 查询帖子
func (r *GormPostRepository) GetByID(id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// GetByIDs 批量查询帖子
func (r *GormPostRepository) GetByIDs(ids []int64) ([]model.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []model.Post
	err := r.db.Where("id IN ?", ids).Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// ListByUser 获取用户的全部帖子，按发布时间倒序
func (r *GormPostRepository) ListByUser(userID int64) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// ListFeed 获取信息流帖子：指定作者的全部帖子加上所有公开帖子，按发布时间倒序
func (r *GormPostRepository) ListFeed(ownerIDs []int64) ([]model.Post, error) {
	var posts []model.Post
	query := r.db.Model(&model.Post{})
	if len(ownerIDs) > 0 {
		query = query.Where("user_id IN ? OR privacy = ?", ownerIDs, model.PrivacyPublic)
	} else {
		query = query.Where("privacy = ?", model.PrivacyPublic)
	}
	err := query.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

// Search 按正文关键字检索，搜索服务在 ES 不可用时回退到这里
func (r *GormPostRepository) Search(keyword string, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("content ILIKE ?", "%"+keyword+"%").
		Order("created_at DESC, id DESC").Limit(limit).Find(&posts).Error
	return posts, err
}
