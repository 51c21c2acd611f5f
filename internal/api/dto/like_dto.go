package dto

import "time"

// LikeRequest 点赞/取消点赞请求，post_id 与 video_id 恰好传一个
type LikeRequest struct {
	PostID  *int64 `json:"post_id" binding:"omitempty,min=1"`
	VideoID *int64 `json:"video_id" binding:"omitempty,min=1"`
}

// LikeInfo 点赞记录
type LikeInfo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PostID    *int64    `json:"post_id,omitempty"`
	VideoID   *int64    `json:"video_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeData 点赞操作结果
type LikeData struct {
	Like      *LikeInfo `json:"like,omitempty"`
	LikeCount int64     `json:"like_count"`
}

// ToggleLikeData 点赞开关结果
type ToggleLikeData struct {
	Liked     bool      `json:"liked"`
	Like      *LikeInfo `json:"like,omitempty"`
	LikeCount int64     `json:"like_count"`
}
