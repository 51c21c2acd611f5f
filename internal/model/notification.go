package model

import "time"

// 通知类型
const (
	NotificationTypeLike          = "like"
	NotificationTypeComment       = "comment"
	NotificationTypeFollowRequest = "follow_request"
	NotificationTypeFollowAccept  = "follow_accept"
)

// Notification 站内通知模型，user_id 为接收者
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:通知ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_notifications_user_id;comment:接收用户ID" json:"user_id"`
	SenderID  *int64    `gorm:"index:idx_notifications_sender_id;comment:触发用户ID" json:"sender_id,omitempty"`
	Type      string    `gorm:"size:64;not null;comment:通知类型" json:"type"`
	PostID    *int64    `gorm:"comment:关联帖子ID" json:"post_id,omitempty"`
	VideoID   *int64    `gorm:"comment:关联视频ID" json:"video_id,omitempty"`
	CommentID *int64    `gorm:"comment:关联评论ID" json:"comment_id,omitempty"`
	Message   string    `gorm:"size:500;not null;comment:通知文案" json:"message"`
	IsRead    bool      `gorm:"not null;default:false;comment:是否已读" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_created_at;comment:创建时间" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
