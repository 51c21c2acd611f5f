package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormFollowRepository struct {
	db *gorm.DB
}

func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

// Create 创建关注请求
func (r *GormFollowRepository) Create(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

// GetByID 根据 ID 查询关注关系
func (r *GormFollowRepository) GetByID(id int64) (*model.Follow, error) {
	var follow model.Follow
	if err := r.db.Where("id = ?", id).First(&follow).Error; err != nil {
		return nil, translate(err)
	}
	return &follow, nil
}

// GetByPair 查询有序用户对之间的关注关系
func (r *GormFollowRepository) GetByPair(followerID, followingID int64) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if err != nil {
		return nil, translate(err)
	}
	return &follow, nil
}

// UpdateStatus 更新关注状态
func (r *GormFollowRepository) UpdateStatus(id int64, status string) (*model.Follow, error) {
	result := r.db.Model(&model.Follow{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

// IsAccepted 检查 follower 是否已被 following 接受
func (r *GormFollowRepository) IsAccepted(followerID, followingID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ? AND status = ?",
			followerID, followingID, model.FollowStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

// AcceptedFollowingIDs 获取用户关注成功的用户 ID 列表
func (r *GormFollowRepository) AcceptedFollowingIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Follow{}).
		Where("follower_id = ? AND status = ?", userID, model.FollowStatusAccepted).
		Order("created_at DESC").
		Pluck("following_id", &ids).Error
	return ids, err
}

// AcceptedFollowerIDs 获取用户的粉丝 ID 列表
func (r *GormFollowRepository) AcceptedFollowerIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.Follow{}).
		Where("following_id = ? AND status = ?", userID, model.FollowStatusAccepted).
		Order("created_at DESC").
		Pluck("follower_id", &ids).Error
	return ids, err
}
