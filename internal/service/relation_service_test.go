package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/model"
)

func TestRequestFollowCreatesPending(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}
	if follow.Status != model.FollowStatusPending {
		t.Errorf("status = %q, want pending", follow.Status)
	}
	if follow.FollowerID != alice.ID || follow.FollowingID != bob.ID {
		t.Errorf("pair = (%d, %d), want (%d, %d)", follow.FollowerID, follow.FollowingID, alice.ID, bob.ID)
	}

	// 被关注方收到关注请求通知
	count, err := env.notifications.UnreadCount(bob.ID)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 1 {
		t.Errorf("bob unread = %d, want 1", count)
	}
}

func TestRequestFollowSelf(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	if _, err := env.relations.RequestFollow(alice.ID, alice.ID); !errors.Is(err, ErrCannotFollowSelf) {
		t.Errorf("err = %v, want ErrCannotFollowSelf", err)
	}
}

func TestRequestFollowUnknownTarget(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	if _, err := env.relations.RequestFollow(alice.ID, 404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestRequestFollowDuplicateKeepsSingleRow(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	first, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("duplicate request created new row: %d != %d", second.ID, first.ID)
	}
	if second.Status != model.FollowStatusPending {
		t.Errorf("status = %q, want pending", second.Status)
	}
}

func TestResolveFollowAccept(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}

	resolved, err := env.relations.ResolveFollow(follow.ID, bob.ID, "accepted")
	if err != nil {
		t.Fatalf("ResolveFollow: %v", err)
	}
	if resolved.Status != model.FollowStatusAccepted {
		t.Errorf("status = %q, want accepted", resolved.Status)
	}

	accepted, err := env.relations.IsAccepted(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsAccepted: %v", err)
	}
	if !accepted {
		t.Error("IsAccepted = false after accept")
	}

	// 通过后请求方收到一条通过通知
	data, err := env.notifications.ListForUser(alice.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if data.Total != 1 {
		t.Fatalf("alice notifications = %d, want 1", data.Total)
	}
	if data.Notifications[0].Type != model.NotificationTypeFollowAccept {
		t.Errorf("type = %q, want %q", data.Notifications[0].Type, model.NotificationTypeFollowAccept)
	}
}

func TestResolveFollowRejectThenRerequest(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}
	rejected, err := env.relations.ResolveFollow(follow.ID, bob.ID, "rejected")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != model.FollowStatusRejected {
		t.Errorf("status = %q, want rejected", rejected.Status)
	}

	// 被拒绝后可以重新申请，同一行回到 pending
	again, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("re-request: %v", err)
	}
	if again.ID != follow.ID {
		t.Errorf("re-request created new row: %d != %d", again.ID, follow.ID)
	}
	if again.Status != model.FollowStatusPending {
		t.Errorf("status = %q, want pending", again.Status)
	}
}

func TestResolveFollowOnlyByFollowing(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	carol := env.registerUser(t, "carol")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}

	// 请求方和无关用户都不能处理
	if _, err := env.relations.ResolveFollow(follow.ID, alice.ID, "accepted"); !errors.Is(err, ErrNoPermission) {
		t.Errorf("follower resolve err = %v, want ErrNoPermission", err)
	}
	if _, err := env.relations.ResolveFollow(follow.ID, carol.ID, "accepted"); !errors.Is(err, ErrNoPermission) {
		t.Errorf("stranger resolve err = %v, want ErrNoPermission", err)
	}
}

func TestResolveFollowAlreadyResolved(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}
	if _, err := env.relations.ResolveFollow(follow.ID, bob.ID, "accepted"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := env.relations.ResolveFollow(follow.ID, bob.ID, "rejected"); !errors.Is(err, ErrFollowResolved) {
		t.Errorf("err = %v, want ErrFollowResolved", err)
	}
}

func TestResolveFollowInvalidStatus(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	follow, err := env.relations.RequestFollow(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestFollow: %v", err)
	}

	if _, err := env.relations.ResolveFollow(follow.ID, bob.ID, "pending"); !errors.Is(err, ErrInvalidFollowStatus) {
		t.Errorf("err = %v, want ErrInvalidFollowStatus", err)
	}
}

func TestResolveFollowMissing(t *testing.T) {
	env := newTestEnv()
	bob := env.registerUser(t, "bob")

	if _, err := env.relations.ResolveFollow(404, bob.ID, "accepted"); !errors.Is(err, ErrFollowNotFound) {
		t.Errorf("err = %v, want ErrFollowNotFound", err)
	}
}

func TestFollowersAndFollowingOnlyAccepted(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")
	carol := env.registerUser(t, "carol")

	env.acceptedFollow(t, alice.ID, bob.ID)
	if _, err := env.relations.RequestFollow(carol.ID, bob.ID); err != nil {
		t.Fatalf("pending follow: %v", err)
	}

	followers, err := env.relations.GetFollowers(bob.ID)
	if err != nil {
		t.Fatalf("GetFollowers: %v", err)
	}
	if followers.Total != 1 || followers.Users[0].ID != alice.ID {
		t.Errorf("followers = %+v, want only alice", followers.Users)
	}

	following, err := env.relations.GetFollowing(alice.ID)
	if err != nil {
		t.Fatalf("GetFollowing: %v", err)
	}
	if following.Total != 1 || following.Users[0].ID != bob.ID {
		t.Errorf("following = %+v, want only bob", following.Users)
	}

	// carol 的请求还在 pending，不进入任何列表
	carolFollowing, err := env.relations.GetFollowing(carol.ID)
	if err != nil {
		t.Fatalf("GetFollowing carol: %v", err)
	}
	if carolFollowing.Total != 0 {
		t.Errorf("carol following = %d, want 0", carolFollowing.Total)
	}
}
