package dto

// UserUpdateRequest 资料更新请求，空指针字段保持原值
type UserUpdateRequest struct {
	Username        *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password        *string `json:"password" binding:"omitempty,min=6,max=72"`
	DisplayName     *string `json:"display_name" binding:"omitempty,max=100"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Bio             *string `json:"bio" binding:"omitempty,max=1000"`
	Location        *string `json:"location" binding:"omitempty,max=100"`
	ProfileImageURL *string `json:"profile_image_url" binding:"omitempty,url"`
	CoverImageURL   *string `json:"cover_image_url" binding:"omitempty,url"`
}

// UserListData 关注/粉丝列表响应
type UserListData struct {
	Users []UserBrief `json:"users"`
	Total int64       `json:"total"`
}
