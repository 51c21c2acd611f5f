package memstore

import (
	"sort"
	"strings"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type postRepo struct {
	s *Store
}

// Create 创建帖子，ID 在写锁内分配
func (r postRepo) Create(post *model.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextPostID++
	post.ID = r.s.nextPostID
	post.CreatedAt = stamp(post.CreatedAt)
	if post.Privacy == "" {
		post.Privacy = model.PrivacyPublic
	}
	r.s.posts[post.ID] = *post
	return nil
}

// GetByID 根据 ID 查询帖子
func (r postRepo) GetByID(id int64) (*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

// GetByIDs 批量查询帖子，按发布时间倒序
func (r postRepo) GetByIDs(ids []int64) ([]model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := r.s.posts[id]; ok {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

// ListByUser 获取用户的全部帖子，按发布时间倒序
func (r postRepo) ListByUser(userID int64) ([]model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var posts []model.Post
	for _, post := range r.s.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

// ListFeed 获取信息流帖子：指定作者的全部帖子加上所有公开帖子
func (r postRepo) ListFeed(ownerIDs []int64) ([]model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owners := make(map[int64]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = true
	}

	var posts []model.Post
	for _, post := range r.s.posts {
		if owners[post.UserID] || post.Privacy == model.PrivacyPublic {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	return posts, nil
}

// Search 按正文关键字检索
func (r postRepo) Search(keyword string, limit int) ([]model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(keyword)
	var posts []model.Post
	for _, post := range r.s.posts {
		if strings.Contains(strings.ToLower(post.Content), needle) {
			posts = append(posts, post)
		}
	}
	sortPostsNewestFirst(posts)
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func sortPostsNewestFirst(posts []model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return newer(posts[i].CreatedAt, posts[i].ID, posts[j].CreatedAt, posts[j].ID)
	})
}
