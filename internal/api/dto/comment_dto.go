package dto

import "time"

// CommentCreateRequest 评论请求，post_id 与 video_id 恰好传一个
type CommentCreateRequest struct {
	PostID  *int64 `json:"post_id" binding:"omitempty,min=1"`
	VideoID *int64 `json:"video_id" binding:"omitempty,min=1"`
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentInfo 评论信息，含作者摘要
type CommentInfo struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	PostID    *int64     `json:"post_id,omitempty"`
	VideoID   *int64     `json:"video_id,omitempty"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Author    *UserBrief `json:"author,omitempty"`
}

// CommentListData 评论列表响应
type CommentListData struct {
	Comments []CommentInfo `json:"comments"`
	Total    int64         `json:"total"`
}
