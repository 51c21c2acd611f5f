package dto

import "time"

// StoryCreateRequest 发布快拍请求
type StoryCreateRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}

// StoryInfo 快拍信息，含作者摘要
type StoryInfo struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	ImageURL  string     `json:"image_url"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	Author    *UserBrief `json:"author,omitempty"`
}

// StoryListData 快拍列表响应
type StoryListData struct {
	Stories []StoryInfo `json:"stories"`
	Total   int64       `json:"total"`
}
