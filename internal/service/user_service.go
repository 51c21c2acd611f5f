package service

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/utils"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID 获取用户公开资料
func (s *UserService) GetUserByID(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateProfile 更新用户资料，只有本人可以操作。空指针字段保持原值。
func (s *UserService) UpdateProfile(targetID, actorID int64, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	if targetID != actorID {
		return nil, ErrNoPermission
	}

	user, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Username != nil && *req.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		updates["username"] = *req.Username
	}
	if req.Email != nil && (user.Email == nil || *req.Email != *user.Email) {
		exists, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = *req.ProfileImageURL
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}

	if len(updates) == 0 {
		return toUserInfo(user), nil
	}

	updated, err := s.userRepo.Update(targetID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(updated), nil
}
