package model

// User 用户模型
type User struct {
	ID              int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username        string  `gorm:"size:255;not null;uniqueIndex;comment:用户名" json:"username"`
	Password        *string `gorm:"size:255;comment:密码哈希，第三方登录账号为空" json:"-"`
	DisplayName     string  `gorm:"size:255;not null;comment:展示名称" json:"display_name"`
	Email           *string `gorm:"size:255;uniqueIndex;comment:邮箱" json:"email,omitempty"`
	Bio             *string `gorm:"size:1000;comment:个人简介" json:"bio,omitempty"`
	Location        *string `gorm:"size:255;comment:所在地" json:"location,omitempty"`
	ProfileImageURL *string `gorm:"size:500;comment:头像地址" json:"profile_image_url,omitempty"`
	CoverImageURL   *string `gorm:"size:500;comment:主页背景地址" json:"cover_image_url,omitempty"`
	Provider        string  `gorm:"size:64;not null;default:'local';comment:账号来源" json:"provider"`
	ProviderID      *string `gorm:"size:255;comment:第三方账号标识" json:"-"`
}

func (User) TableName() string {
	return "users"
}
