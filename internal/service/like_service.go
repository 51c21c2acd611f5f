package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"socialvid-go/internal/api/dto"
	infraRedis "socialvid-go/internal/infra/redis"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

var ErrInvalidTarget = errors.New("必须且只能指定一个点赞目标")

// likeCountTTL 点赞数缓存有效期
const likeCountTTL = 30 * time.Second

// TargetFromRequest 由请求里的可空 post_id/video_id 构造内容目标
func TargetFromRequest(postID, videoID *int64) (model.Target, error) {
	target, ok := model.TargetFromIDs(postID, videoID)
	if !ok {
		return model.Target{}, ErrInvalidTarget
	}
	return target, nil
}

type LikeService struct {
	likeRepo     repository.LikeRepository
	postRepo     repository.PostRepository
	videoRepo    repository.VideoRepository
	notification *NotificationService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	videoRepo repository.VideoRepository,
	notification *NotificationService,
) *LikeService {
	return &LikeService{
		likeRepo:     likeRepo,
		postRepo:     postRepo,
		videoRepo:    videoRepo,
		notification: notification,
	}
}

// Like 点赞目标内容。重复点赞返回已有记录，不产生新记录也不重复通知。
func (s *LikeService) Like(userID int64, target model.Target) (*dto.LikeData, error) {
	ownerID, err := s.targetOwner(target)
	if err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.GetByUserAndTarget(userID, target)
	if err == nil {
		count, _ := s.LikeCount(target)
		return &dto.LikeData{Like: toLikeInfo(existing), LikeCount: count}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	postID, videoID := target.IDs()
	like := &model.Like{UserID: userID, PostID: postID, VideoID: videoID}
	if err := s.likeRepo.Create(like); err != nil {
		return nil, err
	}

	s.invalidateCount(target)

	// 首次点赞才扇出通知，失败只记日志不回滚点赞
	if err := s.notification.NotifyLike(userID, ownerID, target); err != nil {
		logger.Warn("点赞通知发送失败",
			zap.Int64("user_id", userID),
			zap.Int64("owner_id", ownerID),
			zap.Error(err),
		)
	}

	count, _ := s.LikeCount(target)
	return &dto.LikeData{Like: toLikeInfo(like), LikeCount: count}, nil
}

// Unlike 取消点赞。没有点赞记录时视为成功的空操作。
func (s *LikeService) Unlike(userID int64, target model.Target) (*dto.LikeData, error) {
	if _, err := s.targetOwner(target); err != nil {
		return nil, err
	}

	deleted, err := s.likeRepo.DeleteByUserAndTarget(userID, target)
	if err != nil {
		return nil, err
	}
	if deleted {
		s.invalidateCount(target)
	}

	count, _ := s.LikeCount(target)
	return &dto.LikeData{LikeCount: count}, nil
}

// Toggle 点赞开关：未点赞则点赞，已点赞则取消
func (s *LikeService) Toggle(userID int64, target model.Target) (*dto.ToggleLikeData, error) {
	if _, err := s.targetOwner(target); err != nil {
		return nil, err
	}

	_, err := s.likeRepo.GetByUserAndTarget(userID, target)
	if err == nil {
		data, err := s.Unlike(userID, target)
		if err != nil {
			return nil, err
		}
		return &dto.ToggleLikeData{Liked: false, LikeCount: data.LikeCount}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	data, err := s.Like(userID, target)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeData{Liked: true, Like: data.Like, LikeCount: data.LikeCount}, nil
}

// LikeCount 目标的点赞数，Redis 可用时走读穿透缓存
func (s *LikeService) LikeCount(target model.Target) (int64, error) {
	client := infraRedis.Get()
	key := likeCountKey(target)

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if cached, err := client.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.likeRepo.CountByTarget(target)
	if err != nil {
		return 0, err
	}

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = client.Set(ctx, key, count, likeCountTTL).Err()
	}
	return count, nil
}

func (s *LikeService) targetOwner(target model.Target) (int64, error) {
	return resolveTargetOwner(s.postRepo, s.videoRepo, target)
}

// resolveTargetOwner 解析目标内容的作者，目标不存在时返回对应的哨兵错误
func resolveTargetOwner(postRepo repository.PostRepository, videoRepo repository.VideoRepository, target model.Target) (int64, error) {
	if !target.Valid() {
		return 0, ErrInvalidTarget
	}

	switch target.Kind {
	case model.TargetPost:
		post, err := postRepo.GetByID(target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, ErrPostNotFound
			}
			return 0, err
		}
		return post.UserID, nil
	default:
		video, err := videoRepo.GetByID(target.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return 0, ErrVideoNotFound
			}
			return 0, err
		}
		return video.UserID, nil
	}
}

// invalidateCount 写后失效点赞数缓存
func (s *LikeService) invalidateCount(target model.Target) {
	client := infraRedis.Get()
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = client.Del(ctx, likeCountKey(target)).Err()
}

func likeCountKey(target model.Target) string {
	return fmt.Sprintf("like_count:%s:%d", target.Kind, target.ID)
}

func toLikeInfo(like *model.Like) *dto.LikeInfo {
	return &dto.LikeInfo{
		ID:        like.ID,
		UserID:    like.UserID,
		PostID:    like.PostID,
		VideoID:   like.VideoID,
		CreatedAt: like.CreatedAt,
	}
}
