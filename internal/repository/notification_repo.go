package repository

import (
	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create 创建通知
func (r *GormNotificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID 根据 ID 查询通知
func (r *GormNotificationRepository) GetByID(id int64) (*model.Notification, error) {
	var notification model.Notification
	if err := r.db.Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, translate(err)
	}
	return &notification, nil
}

// ListByRecipient 获取用户收到的通知，按时间倒序
func (r *GormNotificationRepository) ListByRecipient(userID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead 置为已读，重复调用保持已读不变
func (r *GormNotificationRepository) MarkRead(id int64) (*model.Notification, error) {
	result := r.db.Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(id)
}

// CountUnread 统计未读通知数
func (r *GormNotificationRepository) CountUnread(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
