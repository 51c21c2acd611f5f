// Package memstore 提供全内存的存储后端，零外部依赖即可启动，
// 也是服务层测试使用的后端。所有读写共享一把读写锁，
// 自增 ID 在写锁内分配。
package memstore

import (
	"sync"
	"time"

	"socialvid-go/internal/model"
	"socialvid-go/internal/repository"
)

// Store 内存存储，按实体拆分为若干仓库视图，共享同一把锁
type Store struct {
	mu sync.RWMutex

	users         map[int64]model.User
	posts         map[int64]model.Post
	videos        map[int64]model.Video
	likes         map[int64]model.Like
	comments      map[int64]model.Comment
	follows       map[int64]model.Follow
	notifications map[int64]model.Notification
	stories       map[int64]model.Story

	nextUserID         int64
	nextPostID         int64
	nextVideoID        int64
	nextLikeID         int64
	nextCommentID      int64
	nextFollowID       int64
	nextNotificationID int64
	nextStoryID        int64
}

// New 创建空的内存存储
func New() *Store {
	return &Store{
		users:         make(map[int64]model.User),
		posts:         make(map[int64]model.Post),
		videos:        make(map[int64]model.Video),
		likes:         make(map[int64]model.Like),
		comments:      make(map[int64]model.Comment),
		follows:       make(map[int64]model.Follow),
		notifications: make(map[int64]model.Notification),
		stories:       make(map[int64]model.Story),
	}
}

// Repositories 以内存存储装配各实体仓库
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		User:         userRepo{s},
		Post:         postRepo{s},
		Video:        videoRepo{s},
		Like:         likeRepo{s},
		Comment:      commentRepo{s},
		Follow:       followRepo{s},
		Notification: notificationRepo{s},
		Story:        storyRepo{s},
	}
}

// stamp 补齐创建时间，存量时间保持不变
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// newer 判定 (创建时间, ID) 倒序，时间相同按 ID 保证稳定顺序
func newer(ti time.Time, idi int64, tj time.Time, idj int64) bool {
	if ti.Equal(tj) {
		return idi > idj
	}
	return ti.After(tj)
}
