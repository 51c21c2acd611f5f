package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormLikeRepository struct {
	db *gorm.DB
}

func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// Create 创建点赞记录
func (r *GormLikeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

// GetByUserAndTarget 查询用户对目标的点赞记录
func (r *GormLikeRepository) GetByUserAndTarget(userID int64, target model.Target) (*model.Like, error) {
	var like model.Like
	err := targetScope(r.db.Where("user_id = ?", userID), target).First(&like).Error
	if err != nil {
		return nil, translate(err)
	}
	return &like, nil
}

// DeleteByUserAndTarget 删除点赞记录，返回是否确有删除
func (r *GormLikeRepository) DeleteByUserAndTarget(userID int64, target model.Target) (bool, error) {
	result := targetScope(r.db.Where("user_id = ?", userID), target).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByTarget 统计目标的点赞数
func (r *GormLikeRepository) CountByTarget(target model.Target) (int64, error) {
	var count int64
	err := targetScope(r.db.Model(&model.Like{}), target).Count(&count).Error
	return count, err
}

// BatchCheckLiked 批量查询点赞状态
func (r *GormLikeRepository) BatchCheckLiked(userID int64, kind model.TargetKind, ids []int64) (map[int64]bool, error) {
	if len(ids) == 0 {
		return map[int64]bool{}, nil
	}

	column := "post_id"
	if kind == model.TargetVideo {
		column = "video_id"
	}

	var likedIDs []int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND "+column+" IN ?", userID, ids).
		Pluck(column, &likedIDs).Error
	if err != nil {
		return nil, err
	}

	likedSet := make(map[int64]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}

	result := make(map[int64]bool, len(ids))
	for _, id := range ids {
		result[id] = likedSet[id]
	}
	return result, nil
}
