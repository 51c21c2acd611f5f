package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"socialvid-go/internal/config"
)

const testConfigYAML = `
app:
  name: socialvid-test
jwt:
  secret: test-secret
  expire_hours: 1
`

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "socialvid-utils-test")
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

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Error("hash equals plaintext")
	}

	if !VerifyPassword("secret123", hash) {
		t.Error("VerifyPassword rejected correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("VerifyPassword accepted wrong password")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	if _, err := ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
