package model

import "time"

// Comment 评论模型，post_id 与 video_id 恰好一个非空
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_comments_user_id;comment:评论用户ID" json:"user_id"`
	PostID    *int64    `gorm:"index:idx_comments_post_id;comment:被评论帖子ID" json:"post_id,omitempty"`
	VideoID   *int64    `gorm:"index:idx_comments_video_id;comment:被评论视频ID" json:"video_id,omitempty"`
	Content   string    `gorm:"type:text;not null;comment:评论内容" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_comments_created_at;comment:评论时间" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Target 返回评论指向的内容目标
func (c *Comment) Target() Target {
	if c.PostID != nil {
		return PostTarget(*c.PostID)
	}
	if c.VideoID != nil {
		return VideoTarget(*c.VideoID)
	}
	return Target{}
}
