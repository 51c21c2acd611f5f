package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/model"
)

func TestCommentCreateAndList(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", "public")
	target := model.PostTarget(post.ID)

	if _, err := env.comments.Create(alice.ID, target, "first"); err != nil {
		t.Fatalf("first comment: %v", err)
	}
	if _, err := env.comments.Create(bob.ID, target, "second"); err != nil {
		t.Fatalf("second comment: %v", err)
	}

	data, err := env.comments.ListByTarget(target)
	if err != nil {
		t.Fatalf("ListByTarget: %v", err)
	}
	if data.Total != 2 {
		t.Fatalf("Total = %d, want 2", data.Total)
	}

	// 倒序：后发的在前
	if data.Comments[0].Content != "second" || data.Comments[1].Content != "first" {
		t.Errorf("order = [%q, %q], want newest first", data.Comments[0].Content, data.Comments[1].Content)
	}
	if data.Comments[0].Author == nil || data.Comments[0].Author.Username != "bob" {
		t.Errorf("author = %+v, want bob", data.Comments[0].Author)
	}
}

func TestCommentNotifiesOwner(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	video := env.createVideo(t, bob.ID, "clip")

	info, err := env.comments.Create(alice.ID, model.VideoTarget(video.ID), "nice")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := env.notifications.ListForUser(bob.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("bob notifications = %d, want 1", list.Total)
	}
	n := list.Notifications[0]
	if n.Type != model.NotificationTypeComment {
		t.Errorf("type = %q, want comment", n.Type)
	}
	if n.CommentID == nil || *n.CommentID != info.ID {
		t.Errorf("comment_id = %v, want %d", n.CommentID, info.ID)
	}
	if n.Sender == nil || n.Sender.ID != alice.ID {
		t.Errorf("sender = %+v, want alice", n.Sender)
	}
}

func TestCommentOwnContentNoNotification(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	post := env.createPost(t, alice.ID, "mine", "public")

	if _, err := env.comments.Create(alice.ID, model.PostTarget(post.ID), "self reply"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	count, err := env.notifications.UnreadCount(alice.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 0 {
		t.Errorf("self-comment produced %d notifications, want 0", count)
	}
}

func TestCommentUnknownTarget(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	if _, err := env.comments.Create(alice.ID, model.VideoTarget(404), "hi"); !errors.Is(err, ErrVideoNotFound) {
		t.Errorf("err = %v, want ErrVideoNotFound", err)
	}
	if _, err := env.comments.ListByTarget(model.PostTarget(404)); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("list err = %v, want ErrPostNotFound", err)
	}
}
