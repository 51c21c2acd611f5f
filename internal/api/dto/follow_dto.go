package dto

import "time"

// FollowCreateRequest 发起关注请求
type FollowCreateRequest struct {
	FollowingID int64 `json:"following_id" binding:"required,min=1"`
}

// FollowResolveRequest 处理关注请求
type FollowResolveRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// FollowInfo 关注关系信息
type FollowInfo struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"follower_id"`
	FollowingID int64     `json:"following_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
