package memstore

import (
	"sort"
	"strings"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type videoRepo struct {
	s *Store
}

// Create 创建视频，ID 在写锁内分配
func (r videoRepo) Create(video *model.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextVideoID++
	video.ID = r.s.nextVideoID
	video.CreatedAt = stamp(video.CreatedAt)
	r.s.videos[video.ID] = *video
	return nil
}

// GetByID 根据 ID 查询视频
func (r videoRepo) GetByID(id int64) (*model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	video, ok := r.s.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &video, nil
}

// GetByIDs 批量查询视频，按发布时间倒序
func (r videoRepo) GetByIDs(ids []int64) ([]model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	videos := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := r.s.videos[id]; ok {
			videos = append(videos, video)
		}
	}
	sortVideosNewestFirst(videos)
	return videos, nil
}

// ListByUser 获取用户发布的视频，按发布时间倒序
func (r videoRepo) ListByUser(userID int64) ([]model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var videos []model.Video
	for _, video := range r.s.videos {
		if video.UserID == userID {
			videos = append(videos, video)
		}
	}
	sortVideosNewestFirst(videos)
	return videos, nil
}

// ListAll 获取全量视频流，按发布时间倒序
func (r videoRepo) ListAll() ([]model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	videos := make([]model.Video, 0, len(r.s.videos))
	for _, video := range r.s.videos {
		videos = append(videos, video)
	}
	sortVideosNewestFirst(videos)
	return videos, nil
}

// Search 按描述与配乐名检索
func (r videoRepo) Search(keyword string, limit int) ([]model.Video, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(keyword)
	var videos []model.Video
	for _, video := range r.s.videos {
		if matchVideo(&video, needle) {
			videos = append(videos, video)
		}
	}
	sortVideosNewestFirst(videos)
	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

func matchVideo(video *model.Video, needle string) bool {
	if video.Description != nil && strings.Contains(strings.ToLower(*video.Description), needle) {
		return true
	}
	if video.SoundName != nil && strings.Contains(strings.ToLower(*video.SoundName), needle) {
		return true
	}
	return false
}

func sortVideosNewestFirst(videos []model.Video) {
	sort.Slice(videos, func(i, j int) bool {
		return newer(videos[i].CreatedAt, videos[i].ID, videos[j].CreatedAt, videos[j].ID)
	})
}
