package dto

import "time"

// PostCreateRequest 发帖请求
type PostCreateRequest struct {
	Content  string  `json:"content" binding:"required,max=5000"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
	Privacy  string  `json:"privacy" binding:"omitempty,oneof=public private"`
}

// PostInfo 帖子信息，含作者摘要与互动计数
type PostInfo struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"user_id"`
	Content      string     `json:"content"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Privacy      string     `json:"privacy"`
	CreatedAt    time.Time  `json:"created_at"`
	Author       *UserBrief `json:"author,omitempty"`
	LikeCount    int64      `json:"like_count"`
	CommentCount int64      `json:"comment_count"`
	ShareCount   int64      `json:"share_count"`
	IsLiked      bool       `json:"is_liked"`
}

// PostFeedData 帖子信息流响应
type PostFeedData struct {
	Posts []PostInfo `json:"posts"`
	Total int64      `json:"total"`
}
