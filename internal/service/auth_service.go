package service

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/config"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/utils"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUsernameExists    = errors.New("用户名已存在")
	ErrEmailExists       = errors.New("邮箱已被使用")
	ErrInvalidCredential = errors.New("用户名或密码错误")
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册。用户名与邮箱的唯一性在写入前检查。
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	if req.Email != nil {
		exists, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:        req.Username,
		Password:        &hashedPassword,
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		Bio:             req.Bio,
		Location:        req.Location,
		ProfileImageURL: req.ProfileImageURL,
		CoverImageURL:   req.CoverImageURL,
		Provider:        "local",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// Login 用户登录，返回 token 数据。第三方登录账号没有本地密码，不能走这里。
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if user.Password == nil || !utils.VerifyPassword(req.Password, *user.Password) {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	expireSeconds := config.GetJWT().ExpireHours * 3600

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
		User:      *toUserInfo(user),
	}, nil
}

// SocialLogin 第三方登录。按 provider 标识查找账号，首次登录自动注册（无本地密码）。
func (s *AuthService) SocialLogin(req *dto.SocialLoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByProvider(req.Provider, req.ProviderID)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.registerSocial(req)
	}
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: config.GetJWT().ExpireHours * 3600,
		User:      *toUserInfo(user),
	}, nil
}

func (s *AuthService) registerSocial(req *dto.SocialLoginRequest) (*model.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameExists
	}

	providerID := req.ProviderID
	user := &model.User{
		Username:        req.Username,
		DisplayName:     req.DisplayName,
		Email:           req.Email,
		ProfileImageURL: req.ProfileImageURL,
		Provider:        req.Provider,
		ProviderID:      &providerID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:              user.ID,
		Username:        user.Username,
		DisplayName:     user.DisplayName,
		Email:           user.Email,
		Bio:             user.Bio,
		Location:        user.Location,
		ProfileImageURL: user.ProfileImageURL,
		CoverImageURL:   user.CoverImageURL,
		Provider:        user.Provider,
	}
}
