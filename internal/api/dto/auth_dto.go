package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username        string  `json:"username" binding:"required,min=3,max=50"`
	Password        string  `json:"password" binding:"required,min=6,max=72"`
	DisplayName     string  `json:"display_name" binding:"required,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Bio             *string `json:"bio" binding:"omitempty,max=1000"`
	Location        *string `json:"location" binding:"omitempty,max=100"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,url"`
	CoverImageURL   *string `json:"cover_image_url" binding:"omitempty,url"`
}

// SocialLoginRequest 第三方登录请求，首次登录自动注册
type SocialLoginRequest struct {
	Provider        string  `json:"provider" binding:"required,max=64"`
	ProviderID      string  `json:"provider_id" binding:"required,max=255"`
	Username        string  `json:"username" binding:"required,min=3,max=50"`
	DisplayName     string  `json:"display_name" binding:"required,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,url"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	DisplayName     string  `json:"display_name"`
	Email           *string `json:"email,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Location        *string `json:"location,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	CoverImageURL   *string `json:"cover_image_url,omitempty"`
	Provider        string  `json:"provider"`
}

// TokenData 登录成功返回的令牌数据
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

// UserBrief 嵌入在内容里的作者摘要
type UserBrief struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	DisplayName     string  `json:"display_name"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}
