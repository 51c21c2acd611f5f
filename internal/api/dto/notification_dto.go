package dto

import "time"

// NotificationInfo 通知信息，触发者存在时附带其摘要
type NotificationInfo struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	PostID    *int64     `json:"post_id,omitempty"`
	VideoID   *int64     `json:"video_id,omitempty"`
	CommentID *int64     `json:"comment_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	Sender    *UserBrief `json:"sender,omitempty"`
}

// NotificationListData 通知列表响应
type NotificationListData struct {
	Notifications []NotificationInfo `json:"notifications"`
	Total         int64              `json:"total"`
	UnreadCount   int64              `json:"unread_count"`
}

// UnreadCountData 未读数响应
type UnreadCountData struct {
	UnreadCount int64 `json:"unread_count"`
}
