package model

import "time"

// 关注请求状态机：pending -> accepted | rejected
const (
	FollowStatusPending  = "pending"
	FollowStatusAccepted = "accepted"
	FollowStatusRejected = "rejected"
)

// Follow 关注关系模型，同一 (follower, following) 至多一行
type Follow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:关注关系ID" json:"id"`
	FollowerID  int64     `gorm:"not null;uniqueIndex:idx_unique_follow_pair;index:idx_follows_follower_id;comment:发起关注的用户ID" json:"follower_id"`
	FollowingID int64     `gorm:"not null;uniqueIndex:idx_unique_follow_pair;index:idx_follows_following_id;comment:被关注的用户ID" json:"following_id"`
	Status      string    `gorm:"size:32;not null;default:'pending';comment:关注状态" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_follows_created_at;comment:发起时间" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// ValidFollowResolution 判断状态是否为合法的处理结果
func ValidFollowResolution(status string) bool {
	return status == FollowStatusAccepted || status == FollowStatusRejected
}
