package model

import "time"

// StoryTTL 快拍有效期
const StoryTTL = 24 * time.Hour

// Story 快拍模型，到期后惰性过滤，不做物理删除
type Story struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:快拍ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_stories_user_id;comment:作者用户ID" json:"user_id"`
	ImageURL  string    `gorm:"size:500;not null;comment:图片地址" json:"image_url"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_stories_created_at;comment:发布时间" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null;index:idx_stories_expires_at;comment:过期时间" json:"expires_at"`
}

func (Story) TableName() string {
	return "stories"
}

// Active 判断快拍在给定时刻是否仍然可见
func (s *Story) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
