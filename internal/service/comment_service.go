package service

import (
	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

type CommentService struct {
	commentRepo  repository.CommentRepository
	postRepo     repository.PostRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
	notification *NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
	notification *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

// Create 发表评论，目标必须存在
func (s *CommentService) Create(userID int64, target model.Target, content string) (*dto.CommentInfo, error) {
	ownerID, err := resolveTargetOwner(s.postRepo, s.videoRepo, target)
	if err != nil {
		return nil, err
	}

	postID, videoID := target.IDs()
	comment := &model.Comment{
		UserID:  userID,
		PostID:  postID,
		VideoID: videoID,
		Content: content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// 扇出通知，失败只记日志不回滚评论
	if err := s.notification.NotifyComment(userID, ownerID, target, comment.ID); err != nil {
		logger.Warn("评论通知发送失败",
			zap.Int64("user_id", userID),
			zap.Int64("owner_id", ownerID),
			zap.Error(err),
		)
	}

	info := toCommentInfo(comment)
	if author, err := s.userRepo.GetByID(userID); err == nil {
		brief := toUserBrief(author)
		info.Author = &brief
	}
	return info, nil
}

// ListByTarget 获取目标的评论列表，按评论时间倒序并附作者摘要
func (s *CommentService) ListByTarget(target model.Target) (*dto.CommentListData, error) {
	if _, err := resolveTargetOwner(s.postRepo, s.videoRepo, target); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTarget(target)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for i := range comments {
		if !seen[comments[i].UserID] {
			seen[comments[i].UserID] = true
			authorIDs = append(authorIDs, comments[i].UserID)
		}
	}

	authors := make(map[int64]dto.UserBrief)
	if len(authorIDs) > 0 {
		users, err := s.userRepo.GetByIDs(authorIDs)
		if err != nil {
			return nil, err
		}
		for i := range users {
			authors[users[i].ID] = toUserBrief(&users[i])
		}
	}

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		info := toCommentInfo(&comments[i])
		if author, ok := authors[comments[i].UserID]; ok {
			a := author
			info.Author = &a
		}
		items = append(items, *info)
	}

	return &dto.CommentListData{Comments: items, Total: int64(len(items))}, nil
}

func toCommentInfo(comment *model.Comment) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:        comment.ID,
		UserID:    comment.UserID,
		PostID:    comment.PostID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
