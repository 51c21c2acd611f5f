package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/api/dto"
)

func TestUpdateProfileOwnerOnly(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	bob := env.registerUser(t, "bob")

	bio := "hacked"
	_, err := env.users.UpdateProfile(alice.ID, bob.ID, &dto.UserUpdateRequest{Bio: &bio})
	if !errors.Is(err, ErrNoPermission) {
		t.Errorf("err = %v, want ErrNoPermission", err)
	}
}

func TestUpdateProfileChangesFields(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	displayName := "Alice Cooper"
	bio := "singer"
	info, err := env.users.UpdateProfile(alice.ID, alice.ID, &dto.UserUpdateRequest{
		DisplayName: &displayName,
		Bio:         &bio,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if info.DisplayName != displayName {
		t.Errorf("display_name = %q, want %q", info.DisplayName, displayName)
	}
	if info.Bio == nil || *info.Bio != bio {
		t.Errorf("bio = %v, want %q", info.Bio, bio)
	}

	// 未提交的字段保持原值
	if info.Username != "alice" {
		t.Errorf("username = %q, want alice", info.Username)
	}
}

func TestUpdateProfileUsernameConflict(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")
	env.registerUser(t, "bob")

	taken := "bob"
	_, err := env.users.UpdateProfile(alice.ID, alice.ID, &dto.UserUpdateRequest{Username: &taken})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("err = %v, want ErrUsernameExists", err)
	}
}

func TestUpdateProfilePasswordRehash(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	newPassword := "newsecret456"
	if _, err := env.users.UpdateProfile(alice.ID, alice.ID, &dto.UserUpdateRequest{Password: &newPassword}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if _, err := env.auth.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("old password err = %v, want ErrInvalidCredential", err)
	}
	if _, err := env.auth.Login(&dto.LoginRequest{Username: "alice", Password: newPassword}); err != nil {
		t.Errorf("new password login: %v", err)
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	env := newTestEnv()

	if _, err := env.users.GetUserByID(404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
