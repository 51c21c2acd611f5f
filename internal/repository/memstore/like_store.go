package memstore

import (
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type likeRepo struct {
	s *Store
}

// Create 创建点赞记录，ID 在写锁内分配
func (r likeRepo) Create(like *model.Like) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextLikeID++
	like.ID = r.s.nextLikeID
	like.CreatedAt = stamp(like.CreatedAt)
	r.s.likes[like.ID] = *like
	return nil
}

// GetByUserAndTarget 查询用户对目标的点赞记录
func (r likeRepo) GetByUserAndTarget(userID int64, target model.Target) (*model.Like, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, like := range r.s.likes {
		if like.UserID == userID && like.Target() == target {
			l := like
			return &l, nil
		}
	}
	return nil, repository.ErrNotFound
}

// DeleteByUserAndTarget 删除点赞记录，返回是否确有删除
func (r likeRepo) DeleteByUserAndTarget(userID int64, target model.Target) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, like := range r.s.likes {
		if like.UserID == userID && like.Target() == target {
			delete(r.s.likes, id)
			return true, nil
		}
	}
	return false, nil
}

// CountByTarget 统计目标的点赞数
func (r likeRepo) CountByTarget(target model.Target) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, like := range r.s.likes {
		if like.Target() == target {
			count++
		}
	}
	return count, nil
}

// BatchCheckLiked 批量查询点赞状态
func (r likeRepo) BatchCheckLiked(userID int64, kind model.TargetKind, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	liked := make(map[int64]bool)
	for _, like := range r.s.likes {
		target := like.Target()
		if like.UserID == userID && target.Kind == kind {
			liked[target.ID] = true
		}
	}
	for _, id := range ids {
		result[id] = liked[id]
	}
	return result, nil
}
