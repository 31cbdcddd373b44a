package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/amokewustl/belong-chivent/internal/auth"
	"github.com/amokewustl/belong-chivent/pkg/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       "user-1",
		Username: "admin",
		Role:     models.RoleAdmin,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := auth.NewTokenManager("test-secret")

	token, err := manager.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-1")
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	if claims.ID == "" {
		t.Error("token ID is empty, want a unique ID for revocation")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("ExpiresAt is nil")
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("token TTL = %v, want about 24h", ttl)
	}
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	manager := auth.NewTokenManager("test-secret")

	first, _ := manager.Issue(testUser())
	second, _ := manager.Issue(testUser())

	firstClaims, err := manager.Parse(first)
	if err != nil {
		t.Fatalf("Parse(first) error = %v", err)
	}
	secondClaims, err := manager.Parse(second)
	if err != nil {
		t.Fatalf("Parse(second) error = %v", err)
	}

	if firstClaims.ID == secondClaims.ID {
		t.Error("two issued tokens share an ID; revoking one would revoke both")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("correct-secret").Issue(testUser())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := auth.NewTokenManager("wrong-secret").Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := auth.NewTokenManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := manager.Parse(token); !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}
