package service

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrCannotFollowSelf    = errors.New("不能关注自己")
	ErrFollowNotFound      = errors.New("关注请求不存在")
	ErrInvalidFollowStatus = errors.New("关注状态只能是 accepted 或 rejected")
	ErrFollowResolved      = errors.New("该关注请求已被处理")
	ErrNoPermission        = errors.New("没有操作权限")
)

type RelationService struct {
	followRepo   repository.FollowRepository
	userRepo     repository.UserRepository
	notification *NotificationService
}

func NewRelationService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	notification *NotificationService,
) *RelationService {
	return &RelationService{
		followRepo:   followRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

// RequestFollow 发起关注请求。同一有序用户对至多保留一行：
// 已有记录时直接把状态覆盖回 pending（含被拒绝后的重新申请）。
func (s *RelationService) RequestFollow(followerID, followingID int64) (*dto.FollowInfo, error) {
	if followerID == followingID {
		return nil, ErrCannotFollowSelf
	}

	// 检查目标用户是否存在
	if _, err := s.userRepo.GetByID(followingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	follow, err := s.followRepo.GetByPair(followerID, followingID)
	switch {
	case err == nil:
		follow, err = s.followRepo.UpdateStatus(follow.ID, model.FollowStatusPending)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, repository.ErrNotFound):
		follow = &model.Follow{
			FollowerID:  followerID,
			FollowingID: followingID,
			Status:      model.FollowStatusPending,
		}
		if err := s.followRepo.Create(follow); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	// 每次成功发起请求都通知被关注方，失败只记日志
	if err := s.notification.NotifyFollowRequest(followerID, followingID); err != nil {
		logger.Warn("关注请求通知发送失败",
			zap.Int64("follower_id", followerID),
			zap.Int64("following_id", followingID),
			zap.Error(err),
		)
	}

	return toFollowInfo(follow), nil
}

// ResolveFollow 处理关注请求，只有被关注方能操作，且只能处理 pending 状态的请求
func (s *RelationService) ResolveFollow(followID, actorID int64, status string) (*dto.FollowInfo, error) {
	if !model.ValidFollowResolution(status) {
		return nil, ErrInvalidFollowStatus
	}

	follow, err := s.followRepo.GetByID(followID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}

	if follow.FollowingID != actorID {
		return nil, ErrNoPermission
	}
	if follow.Status != model.FollowStatusPending {
		return nil, ErrFollowResolved
	}

	follow, err = s.followRepo.UpdateStatus(followID, status)
	if err != nil {
		return nil, err
	}

	if status == model.FollowStatusAccepted {
		// 通过后通知请求方，失败只记日志
		if err := s.notification.NotifyFollowAccept(actorID, follow.FollowerID); err != nil {
			logger.Warn("关注通过通知发送失败",
				zap.Int64("follow_id", followID),
				zap.Error(err),
			)
		}
	}

	return toFollowInfo(follow), nil
}

// IsAccepted 检查关注是否已通过
func (s *RelationService) IsAccepted(followerID, followingID int64) (bool, error) {
	return s.followRepo.IsAccepted(followerID, followingID)
}

// AcceptedFollowingIDs 获取用户关注成功的用户 ID 列表
func (s *RelationService) AcceptedFollowingIDs(userID int64) ([]int64, error) {
	return s.followRepo.AcceptedFollowingIDs(userID)
}

// GetFollowers 获取粉丝列表（仅已通过的关注）
func (s *RelationService) GetFollowers(userID int64) (*dto.UserListData, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ids, err := s.followRepo.AcceptedFollowerIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.buildUserListData(ids)
}

// GetFollowing 获取关注列表（仅已通过的关注）
func (s *RelationService) GetFollowing(userID int64) (*dto.UserListData, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ids, err := s.followRepo.AcceptedFollowingIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.buildUserListData(ids)
}

// buildUserListData 按 orderedIDs 的顺序输出用户摘要
func (s *RelationService) buildUserListData(orderedIDs []int64) (*dto.UserListData, error) {
	users, err := s.userRepo.GetByIDs(orderedIDs)
	if err != nil {
		return nil, err
	}

	userMap := make(map[int64]dto.UserBrief, len(users))
	for i := range users {
		userMap[users[i].ID] = toUserBrief(&users[i])
	}

	items := make([]dto.UserBrief, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if brief, ok := userMap[id]; ok {
			items = append(items, brief)
		}
	}

	return &dto.UserListData{Users: items, Total: int64(len(items))}, nil
}

func toFollowInfo(follow *model.Follow) *dto.FollowInfo {
	return &dto.FollowInfo{
		ID:          follow.ID,
		FollowerID:  follow.FollowerID,
		FollowingID: follow.FollowingID,
		Status:      follow.Status,
		CreatedAt:   follow.CreatedAt,
	}
}
