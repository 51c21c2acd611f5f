package service

import (
	"context"
	"errors"
	"time"

	"socialvid-go/internal/api/dto"
	infraKafka "socialvid-go/internal/infra/kafka"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrVideoNotFound = errors.New("视频不存在")

type VideoService struct {
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
}

func NewVideoService(videoRepo repository.VideoRepository, userRepo repository.UserRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo, userRepo: userRepo}
}

// Create 发布视频，只登记地址等元数据，不处理媒体文件本身
func (s *VideoService) Create(userID int64, req *dto.VideoCreateRequest) (*dto.VideoInfo, error) {
	author, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	video := &model.Video{
		UserID:       userID,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		SoundName:    req.SoundName,
	}
	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}

	// 发布内容事件，失败只记日志不影响发布
	publishVideoCreated(video, author)

	info := toVideoInfo(video)
	brief := toUserBrief(author)
	info.Author = &brief
	return info, nil
}

// GetByID 查询单个视频
func (s *VideoService) GetByID(id int64) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}

func toVideoInfo(video *model.Video) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:           video.ID,
		UserID:       video.UserID,
		Description:  video.Description,
		VideoURL:     video.VideoURL,
		ThumbnailURL: video.ThumbnailURL,
		SoundName:    video.SoundName,
		CreatedAt:    video.CreatedAt,
	}
}

func publishVideoCreated(video *model.Video, author *model.User) {
	if !infraKafka.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &infraKafka.ContentEvent{
		Kind:       "video",
		ID:         video.ID,
		AuthorID:   video.UserID,
		AuthorName: author.DisplayName,
		CreatedAt:  video.CreatedAt.Format(time.RFC3339),
	}
	if video.Description != nil {
		event.Text = *video.Description
	}
	if video.SoundName != nil {
		event.SoundName = *video.SoundName
	}
	if err := infraKafka.SendContentEvent(ctx, contentEventTopic(), event); err != nil {
		logger.Warn("发送视频内容事件失败", zap.Int64("video_id", video.ID), zap.Error(err))
	}
}
