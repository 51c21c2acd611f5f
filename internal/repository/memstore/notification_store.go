package memstore

import (
	"sort"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type notificationRepo struct {
	s *Store
}

// Create 创建通知，ID 在写锁内分配
func (r notificationRepo) Create(notification *model.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextNotificationID++
	notification.ID = r.s.nextNotificationID
	notification.CreatedAt = stamp(notification.CreatedAt)
	r.s.notifications[notification.ID] = *notification
	return nil
}

// GetByID 根据 ID 查询通知
func (r notificationRepo) GetByID(id int64) (*model.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	notification, ok := r.s.notifications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &notification, nil
}

// ListByRecipient 获取用户收到的通知，按时间倒序
func (r notificationRepo) ListByRecipient(userID int64) ([]model.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var notifications []model.Notification
	for _, notification := range r.s.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return newer(notifications[i].CreatedAt, notifications[i].ID,
			notifications[j].CreatedAt, notifications[j].ID)
	})
	return notifications, nil
}

// MarkRead 置为已读，重复调用保持已读不变
func (r notificationRepo) MarkRead(id int64) (*model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification, ok := r.s.notifications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	notification.IsRead = true
	r.s.notifications[id] = notification
	return &notification, nil
}

// CountUnread 统计未读通知数
func (r notificationRepo) CountUnread(userID int64) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, notification := range r.s.notifications {
		if notification.UserID == userID && !notification.IsRead {
			count++
		}
	}
	return count, nil
}
