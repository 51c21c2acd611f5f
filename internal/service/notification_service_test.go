package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/model"
)

func TestNotificationListAndUnread(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")

	if _, err := env.likes.Like(alice.ID, model.PostTarget(post.ID)); err != nil {
		t.Fatalf("Like: %v", err)
	}
	if _, err := env.comments.Create(alice.ID, model.PostTarget(post.ID), "hi"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	data, err := env.notifications.ListForUser(bob.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if data.Total != 2 || data.UnreadCount != 2 {
		t.Fatalf("total = %d unread = %d, want 2/2", data.Total, data.UnreadCount)
	}

	// 文案带触发者名称
	for _, n := range data.Notifications {
		if n.Sender == nil || n.Sender.Username != "alice" {
			t.Errorf("sender = %+v, want alice", n.Sender)
		}
		if n.Message == "" {
			t.Error("empty message")
		}
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")

	if _, err := env.likes.Like(alice.ID, model.PostTarget(post.ID)); err != nil {
		t.Fatalf("Like: %v", err)
	}

	data, err := env.notifications.ListForUser(bob.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	id := data.Notifications[0].ID

	first, err := env.notifications.MarkRead(id)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !first.IsRead {
		t.Error("IsRead = false after MarkRead")
	}

	// 重复标记保持已读
	second, err := env.notifications.MarkRead(id)
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if !second.IsRead {
		t.Error("IsRead reverted on second MarkRead")
	}

	count, err := env.notifications.UnreadCount(bob.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 0 {
		t.Errorf("unread = %d, want 0", count)
	}
}

func TestMarkReadMissing(t *testing.T) {
	env := newTestEnv()

	if _, err := env.notifications.MarkRead(404); !errors.Is(err, ErrNotificationNotFound) {
		t.Errorf("err = %v, want ErrNotificationNotFound", err)
	}
}
