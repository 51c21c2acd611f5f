package dto

import "time"

// VideoCreateRequest 发布视频请求
type VideoCreateRequest struct {
	Description  *string `json:"description" binding:"omitempty,max=5000"`
	VideoURL     string  `json:"video_url" binding:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" binding:"omitempty,url"`
	SoundName    *string `json:"sound_name" binding:"omitempty,max=255"`
}

// VideoInfo 视频信息，含作者摘要与互动计数
type VideoInfo struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Description  *string    `json:"description,omitempty"`
	VideoURL     string     `json:"video_url"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	SoundName    *string    `json:"sound_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	Author       *UserBrief `json:"author,omitempty"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	ShareCount   int64      `json:"share_count"`
	IsLiked      bool       `json:"is_liked"`
}

// VideoFeedData 视频流响应
type VideoFeedData struct {
	Videos []VideoInfo `json:"videos"`
	Total  int64       `json:"total"`
}
