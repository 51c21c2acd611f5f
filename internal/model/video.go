package model

import "time"

// Video 短视频模型
type Video struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	UserID       int64     `gorm:"not null;index:idx_videos_user_id;comment:作者用户ID" json:"user_id"`
	Description  *string   `gorm:"type:text;comment:视频描述" json:"description,omitempty"`
	VideoURL     string    `gorm:"size:500;not null;comment:视频地址" json:"video_url"`
	ThumbnailURL *string   `gorm:"size:500;comment:封面地址" json:"thumbnail_url,omitempty"`
	SoundName    *string   `gorm:"size:255;comment:配乐名称" json:"sound_name,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_videos_created_at;comment:发布时间" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
