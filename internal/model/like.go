package model

import "time"

// Like 点赞模型，post_id 与 video_id 恰好一个非空
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	PostID    *int64    `gorm:"index:idx_likes_post_id;comment:被点赞帖子ID" json:"post_id,omitempty"`
	VideoID   *int64    `gorm:"index:idx_likes_video_id;comment:被点赞视频ID" json:"video_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Target 返回点赞指向的内容目标
func (l *Like) Target() Target {
	if l.PostID != nil {
		return PostTarget(*l.PostID)
	}
	if l.VideoID != nil {
		return VideoTarget(*l.VideoID)
	}
	return Target{}
}
