package memstore

import (
	"sort"

	"socialvid-go/internal/model"
)

type commentRepo struct {
	s *Store
}

// Create 创建评论，ID 在写锁内分配
func (r commentRepo) Create(comment *model.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextCommentID++
	comment.ID = r.s.nextCommentID
	comment.CreatedAt = stamp(comment.CreatedAt)
	r.s.comments[comment.ID] = *comment
	return nil
}

// ListByTarget 获取目标的评论列表，按评论时间倒序
func (r commentRepo) ListByTarget(target model.Target) ([]model.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var comments []model.Comment
	for _, comment := range r.s.comments {
		if comment.Target() == target {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return newer(comments[i].CreatedAt, comments[i].ID, comments[j].CreatedAt, comments[j].ID)
	})
	return comments, nil
}

// CountByTarget 统计目标的评论数
func (r commentRepo) CountByTarget(target model.Target) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var count int64
	for _, comment := range r.s.comments {
		if comment.Target() == target {
			count++
		}
	}
	return count, nil
}
