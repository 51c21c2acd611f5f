package model

import "time"

// 帖子可见性
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// Post 图文帖子模型
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:帖子标识" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_posts_user_id;comment:作者用户ID" json:"user_id"`
	Content   string    `gorm:"type:text;not null;comment:帖子正文" json:"content"`
	ImageURL  *string   `gorm:"size:500;comment:配图地址" json:"image_url,omitempty"`
	Privacy   string    `gorm:"size:32;not null;default:'public';comment:可见性" json:"privacy"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_posts_created_at;comment:发布时间" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
