package service

import (
	"context"
	"errors"
	"time"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/config"
	infraKafka "socialvid-go/internal/infra/kafka"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrPostNotFound = errors.New("帖子不存在")

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create 发布帖子，可见性默认公开
func (s *PostService) Create(userID int64, req *dto.PostCreateRequest) (*dto.PostInfo, error) {
	author, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	privacy := req.Privacy
	if privacy == "" {
		privacy = model.PrivacyPublic
	}

	post := &model.Post{
		UserID:   userID,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Privacy:  privacy,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// 发布内容事件，失败只记日志不影响发帖
	publishPostCreated(post, author)

	info := toPostInfo(post)
	brief := toUserBrief(author)
	info.Author = &brief
	return info, nil
}

// GetByID 查询单个帖子
func (s *PostService) GetByID(id int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func toPostInfo(post *model.Post) *dto.PostInfo {
	return &dto.PostInfo{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Privacy:   post.Privacy,
		CreatedAt: post.CreatedAt,
	}
}

// contentEventTopic 内容事件 topic，未配置时使用默认名
func contentEventTopic() string {
	if topic := config.GetKafka().Topics["content_events"]; topic != "" {
		return topic
	}
	return "content-events"
}

func publishPostCreated(post *model.Post, author *model.User) {
	if !infraKafka.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &infraKafka.ContentEvent{
		Kind:       "post",
		ID:         post.ID,
		AuthorID:   post.UserID,
		AuthorName: author.DisplayName,
		Text:       post.Content,
		CreatedAt:  post.CreatedAt.Format(time.RFC3339),
	}
	if err := infraKafka.SendContentEvent(ctx, contentEventTopic(), event); err != nil {
		logger.Warn("发送帖子内容事件失败", zap.Int64("post_id", post.ID), zap.Error(err))
	}
}
