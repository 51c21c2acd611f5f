package service

import (
	"errors"
	"testing"

	"socialvid-go/internal/api/dto"
	"socialvid-go/pkg/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()

	email := "alice@example.com"
	info, err := env.auth.Register(&dto.RegisterRequest{
		Username:    "alice",
		Password:    "secret123",
		DisplayName: "Alice",
		Email:       &email,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if info.ID == 0 {
		t.Error("registered user has zero ID")
	}
	if info.Provider != "local" {
		t.Errorf("provider = %q, want local", info.Provider)
	}

	tokenData, err := env.auth.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if tokenData.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", tokenData.TokenType)
	}

	claims, err := utils.ParseToken(tokenData.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != info.ID {
		t.Errorf("token user = %d, want %d", claims.UserID, info.ID)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv()
	env.registerUser(t, "alice")

	_, err := env.auth.Register(&dto.RegisterRequest{
		Username:    "alice",
		Password:    "another123",
		DisplayName: "Alice 2",
	})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("err = %v, want ErrUsernameExists", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	email := "shared@example.com"
	if _, err := env.auth.Register(&dto.RegisterRequest{
		Username:    "alice",
		Password:    "secret123",
		DisplayName: "Alice",
		Email:       &email,
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := env.auth.Register(&dto.RegisterRequest{
		Username:    "bob",
		Password:    "secret123",
		DisplayName: "Bob",
		Email:       &email,
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestSocialLoginRegistersOnce(t *testing.T) {
	env := newTestEnv()

	req := &dto.SocialLoginRequest{
		Provider:    "google",
		ProviderID:  "g-123",
		Username:    "alice",
		DisplayName: "Alice",
	}

	first, err := env.auth.SocialLogin(req)
	if err != nil {
		t.Fatalf("SocialLogin: %v", err)
	}
	if first.User.Provider != "google" {
		t.Errorf("provider = %q, want google", first.User.Provider)
	}

	// 同一第三方账号再次登录复用已有用户
	second, err := env.auth.SocialLogin(req)
	if err != nil {
		t.Fatalf("second SocialLogin: %v", err)
	}
	if second.User.ID != first.User.ID {
		t.Errorf("user ID = %d, want %d", second.User.ID, first.User.ID)
	}

	// 无本地密码，不能密码登录
	if _, err := env.auth.Login(&dto.LoginRequest{Username: "alice", Password: "secret123"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("password login err = %v, want ErrInvalidCredential", err)
	}
}

func TestSocialLoginUsernameTaken(t *testing.T) {
	env := newTestEnv()
	env.registerUser(t, "alice")

	_, err := env.auth.SocialLogin(&dto.SocialLoginRequest{
		Provider:    "google",
		ProviderID:  "g-456",
		Username:    "alice",
		DisplayName: "Alice G",
	})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("err = %v, want ErrUsernameExists", err)
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv()
	env.registerUser(t, "alice")

	if _, err := env.auth.Login(&dto.LoginRequest{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredential", err)
	}
	if _, err := env.auth.Login(&dto.LoginRequest{Username: "ghost", Password: "secret123"}); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredential", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	env := newTestEnv()
	alice := env.registerUser(t, "alice")

	info, err := env.auth.GetCurrentUser(alice.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if info.Username != "alice" {
		t.Errorf("username = %q, want alice", info.Username)
	}

	if _, err := env.auth.GetCurrentUser(404); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
