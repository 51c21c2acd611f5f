package repository

import (
	"time"

	"socialvid-go/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户存储接口
type UserRepository interface {
	Create(user *model.User) error
	GetByID(id int64) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByProvider(provider, providerID string) (*model.User, error)
	GetByIDs(ids []int64) ([]model.User, error)
	Update(id int64, updates map[string]interface{}) (*model.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

// PostRepository 帖子存储接口
type PostRepository interface {
	Create(post *model.Post) error
	GetByID(id int64) (*model.Post, error)
	GetByIDs(ids []int64) ([]model.Post, error)
	ListByUser(userID int64) ([]model.Post, error)
	ListFeed(ownerIDs []int64) ([]model.Post, error)
	Search(keyword string, limit int) ([]model.Post, error)
}

// VideoRepository 视频存储接口
type VideoRepository interface {
	Create(video *model.Video) error
	GetByID(id int64) (*model.Video, error)
	GetByIDs(ids []int64) ([]model.Video, error)
	ListByUser(userID int64) ([]model.Video, error)
	ListAll() ([]model.Video, error)
	Search(keyword string, limit int) ([]model.Video, error)
}

// LikeRepository 点赞存储接口
type LikeRepository interface {
	Create(like *model.Like) error
	GetByUserAndTarget(userID int64, target model.Target) (*model.Like, error)
	DeleteByUserAndTarget(userID int64, target model.Target) (bool, error)
	CountByTarget(target model.Target) (int64, error)
	BatchCheckLiked(userID int64, kind model.TargetKind, ids []int64) (map[int64]bool, error)
}

// CommentRepository 评论存储接口
type CommentRepository interface {
	Create(comment *model.Comment) error
	ListByTarget(target model.Target) ([]model.Comment, error)
	CountByTarget(target model.Target) (int64, error)
}

// FollowRepository 关注关系存储接口
type FollowRepository interface {
	Create(follow *model.Follow) error
	GetByID(id int64) (*model.Follow, error)
	GetByPair(followerID, followingID int64) (*model.Follow, error)
	UpdateStatus(id int64, status string) (*model.Follow, error)
	IsAccepted(followerID, followingID int64) (bool, error)
	AcceptedFollowingIDs(userID int64) ([]int64, error)
	AcceptedFollowerIDs(userID int64) ([]int64, error)
}

// NotificationRepository 通知存储接口
type NotificationRepository interface {
	Create(notification *model.Notification) error
	GetByID(id int64) (*model.Notification, error)
	ListByRecipient(userID int64) ([]model.Notification, error)
	MarkRead(id int64) (*model.Notification, error)
	CountUnread(userID int64) (int64, error)
}

// StoryRepository 快拍存储接口
type StoryRepository interface {
	Create(story *model.Story) error
	ListActiveByUsers(userIDs []int64, now time.Time) ([]model.Story, error)
}

// Repositories 各实体存储的集合，由存储后端装配
type Repositories struct {
	User         UserRepository
	Post         PostRepository
	Video        VideoRepository
	Like         LikeRepository
	Comment      CommentRepository
	Follow       FollowRepository
	Notification NotificationRepository
	Story        StoryRepository
}

// NewGormRepositories 装配 PostgreSQL 存储后端
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewGormUserRepository(db),
		Post:         NewGormPostRepository(db),
		Video:        NewGormVideoRepository(db),
		Like:         NewGormLikeRepository(db),
		Comment:      NewGormCommentRepository(db),
		Follow:       NewGormFollowRepository(db),
		Notification: NewGormNotificationRepository(db),
		Story:        NewGormStoryRepository(db),
	}
}

// targetScope 按目标类型限定 post_id/video_id 条件
func targetScope(db *gorm.DB, target model.Target) *gorm.DB {
	if target.Kind == model.TargetPost {
		return db.Where("post_id = ?", target.ID)
	}
	return db.Where("video_id = ?", target.ID)
}
