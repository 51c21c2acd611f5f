package memstore

import (
	"sort"
	"time"

	"socialvid-go/internal/model"
)

type storyRepo struct {
	s *Store
}

// Create 创建快拍，ID 在写锁内分配
func (r storyRepo) Create(story *model.Story) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextStoryID++
	story.ID = r.s.nextStoryID
	story.CreatedAt = stamp(story.CreatedAt)
	r.s.stories[story.ID] = *story
	return nil
}

// ListActiveByUsers 获取指定用户未过期的快拍，按发布时间倒序。过期行保留不删，只做过滤。
func (r storyRepo) ListActiveByUsers(userIDs []int64, now time.Time) ([]model.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owners := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		owners[id] = true
	}

	var stories []model.Story
	for _, story := range r.s.stories {
		if owners[story.UserID] && story.Active(now) {
			stories = append(stories, story)
		}
	}
	sort.Slice(stories, func(i, j int) bool {
		return newer(stories[i].CreatedAt, stories[i].ID, stories[j].CreatedAt, stories[j].ID)
	})
	return stories, nil
}
