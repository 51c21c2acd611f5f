package service

import (
	"errors"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

var ErrNotificationNotFound = errors.New("通知不存在")

type NotificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// NotifyLike 点赞通知，作者给自己点赞时不产生通知
func (s *NotificationService) NotifyLike(actorID, ownerID int64, target model.Target) error {
	if actorID == ownerID {
		return nil
	}

	message := "赞了你的帖子"
	if target.Kind == model.TargetVideo {
		message = "赞了你的视频"
	}

	postID, videoID := target.IDs()
	return s.notificationRepo.Create(&model.Notification{
		UserID:   ownerID,
		SenderID: &actorID,
		Type:     model.NotificationTypeLike,
		PostID:   postID,
		VideoID:  videoID,
		Message:  s.withActorName(actorID, message),
	})
}

// NotifyComment 评论通知，作者评论自己的内容时不产生通知
func (s *NotificationService) NotifyComment(actorID, ownerID int64, target model.Target, commentID int64) error {
	if actorID == ownerID {
		return nil
	}

	message := "评论了你的帖子"
	if target.Kind == model.TargetVideo {
		message = "评论了你的视频"
	}

	postID, videoID := target.IDs()
	return s.notificationRepo.Create(&model.Notification{
		UserID:    ownerID,
		SenderID:  &actorID,
		Type:      model.NotificationTypeComment,
		PostID:    postID,
		VideoID:   videoID,
		CommentID: &commentID,
		Message:   s.withActorName(actorID, message),
	})
}

// NotifyFollowRequest 关注请求通知，每次成功发起请求都会通知被关注方
func (s *NotificationService) NotifyFollowRequest(actorID, recipientID int64) error {
	return s.notificationRepo.Create(&model.Notification{
		UserID:   recipientID,
		SenderID: &actorID,
		Type:     model.NotificationTypeFollowRequest,
		Message:  s.withActorName(actorID, "请求关注你"),
	})
}

// NotifyFollowAccept 关注通过通知，发给请求方
func (s *NotificationService) NotifyFollowAccept(actorID, recipientID int64) error {
	return s.notificationRepo.Create(&model.Notification{
		UserID:   recipientID,
		SenderID: &actorID,
		Type:     model.NotificationTypeFollowAccept,
		Message:  s.withActorName(actorID, "接受了你的关注请求"),
	})
}

// ListForUser 获取用户的通知列表，附带触发者摘要与未读数
func (s *NotificationService) ListForUser(userID int64) (*dto.NotificationListData, error) {
	notifications, err := s.notificationRepo.ListByRecipient(userID)
	if err != nil {
		return nil, err
	}

	senderIDs := make([]int64, 0, len(notifications))
	seen := make(map[int64]bool)
	for i := range notifications {
		if sid := notifications[i].SenderID; sid != nil && !seen[*sid] {
			seen[*sid] = true
			senderIDs = append(senderIDs, *sid)
		}
	}

	senders := make(map[int64]dto.UserBrief)
	if len(senderIDs) > 0 {
		users, err := s.userRepo.GetByIDs(senderIDs)
		if err != nil {
			return nil, err
		}
		for i := range users {
			senders[users[i].ID] = toUserBrief(&users[i])
		}
	}

	items := make([]dto.NotificationInfo, 0, len(notifications))
	var unread int64
	for i := range notifications {
		n := &notifications[i]
		if !n.IsRead {
			unread++
		}
		info := dto.NotificationInfo{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			PostID:    n.PostID,
			VideoID:   n.VideoID,
			CommentID: n.CommentID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.SenderID != nil {
			if sender, ok := senders[*n.SenderID]; ok {
				info.Sender = &sender
			}
		}
		items = append(items, info)
	}

	return &dto.NotificationListData{
		Notifications: items,
		Total:         int64(len(items)),
		UnreadCount:   unread,
	}, nil
}

// MarkRead 将通知置为已读。已读通知重复操作保持已读，不可回退。
func (s *NotificationService) MarkRead(id int64) (*dto.NotificationInfo, error) {
	notification, err := s.notificationRepo.MarkRead(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	return &dto.NotificationInfo{
		ID:        notification.ID,
		Type:      notification.Type,
		Message:   notification.Message,
		PostID:    notification.PostID,
		VideoID:   notification.VideoID,
		CommentID: notification.CommentID,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}, nil
}

// UnreadCount 未读通知数
func (s *NotificationService) UnreadCount(userID int64) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

// withActorName 通知文案带上触发者名称，查询失败时退回纯动作文案
func (s *NotificationService) withActorName(actorID int64, action string) string {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		return action
	}
	return actor.DisplayName + " " + action
}

func toUserBrief(user *model.User) dto.UserBrief {
	return dto.UserBrief{
		ID:              user.ID,
		Username:        user.Username,
		DisplayName:     user.DisplayName,
		ProfileImageURL: user.ProfileImageURL,
	}
}
