package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormVideoRepository struct {
	db *gorm.DB
}

func NewGormVideoRepository(db *gorm.DB) *GormVideoRepository {
	return &GormVideoRepository{db: db}
}

// Create 创建视频
func (r *GormVideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// GetByID 根据 ID 查询视频
func (r *GormVideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.Where("id = ?", id).First(&video).Error; err != nil {
		return nil, translate(err)
	}
	return &video, nil
}

// GetByIDs 批量查询视频
func (r *GormVideoRepository) GetByIDs(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Where("id IN ?", ids).Order("created_at DESC, id DESC").Find(&videos).Error
	return videos, err
}

// ListByUser 获取用户发布的视频，按发布时间倒序
func (r *GormVideoRepository) ListByUser(userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&videos).Error
	return videos, err
}

// ListAll 获取全量视频流，按发布时间倒序
func (r *GormVideoRepository) ListAll() ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Order("created_at DESC, id DESC").Find(&videos).Error
	return videos, err
}

// Search 按描述与配乐名检索，搜索服务在 ES 不可用时回退到这里
func (r *GormVideoRepository) Search(keyword string, limit int) ([]model.Video, error) {
	var videos []model.Video
	pattern := "%" + keyword + "%"
	err := r.db.Where("description ILIKE ? OR sound_name ILIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").Limit(limit).Find(&videos).Error
	return videos, err
}
