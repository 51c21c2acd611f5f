package service

import (
	"time"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

type StoryService struct {
	storyRepo repository.StoryRepository
}

func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// Create 发布快拍，过期时间固定为发布后 24 小时
func (s *StoryService) Create(userID int64, req *dto.StoryCreateRequest) (*dto.StoryInfo, error) {
	now := time.Now()
	story := &model.Story{
		UserID:    userID,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		ExpiresAt: now.Add(model.StoryTTL),
	}
	if err := s.storyRepo.Create(story); err != nil {
		return nil, err
	}

	return &dto.StoryInfo{
		ID:        story.ID,
		UserID:    story.UserID,
		ImageURL:  story.ImageURL,
		CreatedAt: story.CreatedAt,
		ExpiresAt: story.ExpiresAt,
	}, nil
}
