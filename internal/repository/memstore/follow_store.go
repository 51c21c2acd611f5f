package memstore

import (
	"sort"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type followRepo struct {
	s *Store
}

// Create 创建关注请求，ID 在写锁内分配
func (r followRepo) Create(follow *model.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextFollowID++
	follow.ID = r.s.nextFollowID
	follow.CreatedAt = stamp(follow.CreatedAt)
	if follow.Status == "" {
		follow.Status = model.FollowStatusPending
	}
	r.s.follows[follow.ID] = *follow
	return nil
}

// GetByID 根据 ID 查询关注关系
func (r followRepo) GetByID(id int64) (*model.Follow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	follow, ok := r.s.follows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &follow, nil
}

// GetByPair 查询有序用户对之间的关注关系
func (r followRepo) GetByPair(followerID, followingID int64) (*model.Follow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, follow := range r.s.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			f := follow
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

// UpdateStatus 更新关注状态
func (r followRepo) UpdateStatus(id int64, status string) (*model.Follow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	follow, ok := r.s.follows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	follow.Status = status
	r.s.follows[id] = follow
	return &follow, nil
}

// IsAccepted 检查 follower 是否已被 following 接受
func (r followRepo) IsAccepted(followerID, followingID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, follow := range r.s.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			return follow.Status == model.FollowStatusAccepted, nil
		}
	}
	return false, nil
}

// AcceptedFollowingIDs 获取用户关注成功的用户 ID 列表
func (r followRepo) AcceptedFollowingIDs(userID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var follows []model.Follow
	for _, follow := range r.s.follows {
		if follow.FollowerID == userID && follow.Status == model.FollowStatusAccepted {
			follows = append(follows, follow)
		}
	}
	return followingIDs(follows, func(f model.Follow) int64 { return f.FollowingID }), nil
}

// AcceptedFollowerIDs 获取用户的粉丝 ID 列表
func (r followRepo) AcceptedFollowerIDs(userID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var follows []model.Follow
	for _, follow := range r.s.follows {
		if follow.FollowingID == userID && follow.Status == model.FollowStatusAccepted {
			follows = append(follows, follow)
		}
	}
	return followingIDs(follows, func(f model.Follow) int64 { return f.FollowerID }), nil
}

// followingIDs 按关注时间倒序展开为用户 ID 列表
func followingIDs(follows []model.Follow, pick func(model.Follow) int64) []int64 {
	sort.Slice(follows, func(i, j int) bool {
		return newer(follows[i].CreatedAt, follows[i].ID, follows[j].CreatedAt, follows[j].ID)
	})
	ids := make([]int64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, pick(follow))
	}
	return ids
}
