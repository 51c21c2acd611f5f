package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/model"
)

func TestLikeAndCount(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")

	data, err := env.likes.Like(alice.ID, model.PostTarget(post.ID))
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if data.Like == nil {
		t.Fatal("Like returned nil record")
	}
	if data.LikeCount != 1 {
		t.Errorf("LikeCount = %d, want 1", data.LikeCount)
	}

	// 作者收到点赞通知
	list, err := env.notifications.ListForUser(bob.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if list.Total != 1 || list.Notifications[0].Type != model.NotificationTypeLike {
		t.Errorf("bob notifications = %+v, want one like", list.Notifications)
	}
}

func TestLikeIdempotent(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")
	target := model.PostTarget(post.ID)

	first, err := env.likes.Like(alice.ID, target)
	if err != nil {
		t.Fatalf("first like: %v", err)
	}
	second, err := env.likes.Like(alice.ID, target)
	if err != nil {
		t.Fatalf("second like: %v", err)
	}
	if first.Like.ID != second.Like.ID {
		t.Errorf("duplicate like created new record: %d != %d", second.Like.ID, first.Like.ID)
	}
	if second.LikeCount != 1 {
		t.Errorf("LikeCount = %d, want 1", second.LikeCount)
	}

	// 重复点赞不重复通知
	count, err := env.notifications.UnreadCount(bob.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 1 {
		t.Errorf("bob unread = %d, want 1", count)
	}
}

func TestLikeOwnContentNoNotification(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	post := env.createPost(t, alice.ID, "mine", "public")

	if _, err := env.likes.Like(alice.ID, model.PostTarget(post.ID)); err != nil {
		t.Fatalf("Like: %v", err)
	}

	count, err := env.notifications.UnreadCount(alice.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 0 {
		t.Errorf("self-like produced %d notifications, want 0", count)
	}
}

func TestUnlikeMissingIsNoop(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")

	data, err := env.likes.Unlike(alice.ID, model.PostTarget(post.ID))
	if err != nil {
		t.Fatalf("Unlike without like: %v", err)
	}
	if data.LikeCount != 0 {
		t.Errorf("LikeCount = %d, want 0", data.LikeCount)
	}
}

func TestToggle(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	video := env.createVideo(t, bob.ID, "clip")
	target := model.VideoTarget(video.ID)

	on, err := env.likes.Toggle(alice.ID, target)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !on.Liked || on.LikeCount != 1 {
		t.Errorf("toggle on = %+v, want liked with count 1", on)
	}

	off, err := env.likes.Toggle(alice.ID, target)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if off.Liked || off.LikeCount != 0 {
		t.Errorf("toggle off = %+v, want unliked with count 0", off)
	}
}

func TestLikeUnknownTarget(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	if _, err := env.likes.Like(alice.ID, model.PostTarget(404)); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("post err = %v, want ErrPostNotFound", err)
	}
	if _, err := env.likes.Like(alice.ID, model.VideoTarget(404)); !errors.Is(err, ErrVideoNotFound) {
		t.Errorf("video err = %v, want ErrVideoNotFound", err)
	}
}

func TestTargetFromRequest(t *testing.T) {
	postID := int64(1)
	videoID := int64(2)

	target, err := TargetFromRequest(&postID, nil)
	if err != nil {
		t.Fatalf("post target: %v", err)
	}
	if target.Kind != model.TargetPost || target.ID != postID {
		t.Errorf("target = %+v, want post 1", target)
	}

	if _, err := TargetFromRequest(nil, nil); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("empty err = %v, want ErrInvalidTarget", err)
	}
	if _, err := TargetFromRequest(&postID, &videoID); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("both err = %v, want ErrInvalidTarget", err)
	}
}
