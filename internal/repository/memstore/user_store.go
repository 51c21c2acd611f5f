package memstore

import (
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type userRepo struct {
	s *Store
}

// Create 创建用户，ID 在写锁内分配
func (r userRepo) Create(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	r.s.users[user.ID] = *user
	return nil
}

// GetByID 根据 ID 查询用户
func (r userRepo) GetByID(id int64) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户
func (r userRepo) GetByUsername(username string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByProvider 根据第三方账号来源查询用户
func (r userRepo) GetByProvider(provider, providerID string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Provider == provider && user.ProviderID != nil && *user.ProviderID == providerID {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetByIDs 批量查询用户
func (r userRepo) GetByIDs(ids []int64) ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := r.s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// Update 更新用户字段，键为列名，与 gorm 后端保持一致
func (r userRepo) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	for column, value := range updates {
		text, _ := value.(string)
		switch column {
		case "username":
			user.Username = text
		case "display_name":
			user.DisplayName = text
		case "password":
			user.Password = &text
		case "email":
			user.Email = &text
		case "bio":
			user.Bio = &text
		case "location":
			user.Location = &text
		case "profile_image_url":
			user.ProfileImageURL = &text
		case "cover_image_url":
			user.CoverImageURL = &text
		}
	}

	r.s.users[id] = user
	return &user, nil
}

// ExistsByUsername 检查用户名是否已存在
func (r userRepo) ExistsByUsername(username string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmail 检查邮箱是否已存在
func (r userRepo) ExistsByEmail(email string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email != nil && *user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
