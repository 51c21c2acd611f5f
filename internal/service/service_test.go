package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"socialvid-go/internal/api/dto"
	"socialvid-go/internal/config"
	"socialvid-go/internal/repository"
	"socialvid-go/internal/repository/memstore"
	"socialvid-go/pkg/logger"
)

const testConfigYAML = `
app:
  name: socialvid-test
  version: test
  mode: test
  port: 0
storage:
  driver: memory
jwt:
  secret: test-secret
  expire_hours: 1
log:
  level: error
  format: console
  output: stdout
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "socialvid-service-test")
	if err != nil {
		panic(err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		panic(err)
	}
	if _, err := config.Load(path); err != nil {
		panic(err)
	}
	if err := logger.Init("error", "console", "stdout", ""); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// testEnv 用内存存储装配全部服务
type testEnv struct {
	repos         *repository.Repositories
	auth          *AuthService
	users         *UserService
	relations     *RelationService
	posts         *PostService
	videos        *VideoService
	likes         *LikeService
	comments      *CommentService
	notifications *NotificationService
	stories       *StoryService
	feed          *FeedService
}

func newTestEnv() *testEnv {
	repos := memstore.New().Repositories()

	notifications := NewNotificationService(repos.Notification, repos.User)
	likes := NewLikeService(repos.Like, repos.Post, repos.Video, notifications)

	return &testEnv{
		repos:         repos,
		auth:          NewAuthService(repos.User),
		users:         NewUserService(repos.User),
		relations:     NewRelationService(repos.Follow, repos.User, notifications),
		posts:         NewPostService(repos.Post, repos.User),
		videos:        NewVideoService(repos.Video, repos.User),
		likes:         likes,
		comments:      NewCommentService(repos.Comment, repos.Post, repos.Video, repos.User, notifications),
		notifications: notifications,
		stories:       NewStoryService(repos.Story),
		feed:          NewFeedService(repos, likes),
	}
}

func (e *testEnv) registerUser(t *testing.T, username string) *dto.UserInfo {
	t.Helper()

	info, err := e.auth.Register(&dto.RegisterRequest{
		Username:    username,
		Password:    "secret123",
		DisplayName: username,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return info
}

func (e *testEnv) createPost(t *testing.T, userID int64, content, privacy string) *dto.PostInfo {
	t.Helper()

	info, err := e.posts.Create(userID, &dto.PostCreateRequest{Content: content, Privacy: privacy})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return info
}

func (e *testEnv) createVideo(t *testing.T, userID int64, description string) *dto.VideoInfo {
	t.Helper()

	info, err := e.videos.Create(userID, &dto.VideoCreateRequest{
		Description: &description,
		VideoURL:    fmt.Sprintf("https://cdn.example.com/v/%d.mp4", userID),
	})
	if err != nil {
		t.Fatalf("create video: %v", err)
	}
	return info
}

// acceptedFollow 建立一条已通过的关注关系 follower -> following
func (e *testEnv) acceptedFollow(t *testing.T, followerID, followingID int64) {
	t.Helper()

	follow, err := e.relations.RequestFollow(followerID, followingID)
	if err != nil {
		t.Fatalf("request follow: %v", err)
	}
	if _, err := e.relations.ResolveFollow(follow.ID, followingID, "accepted"); err != nil {
		t.Fatalf("accept follow: %v", err)
	}
}
