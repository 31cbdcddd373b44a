package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records revoked session tokens until they would have expired.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RedisDenylist implements Denylist on redis with per-token TTLs.
type RedisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a denylist over client.
func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func denylistKey(tokenID string) string {
	return fmt.Sprintf("auth:denylist:%s", tokenID)
}

// Revoke marks tokenID revoked until the given instant.
func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Token already expired; nothing to deny.
		return nil
	}

	if err := d.client.Set(ctx, denylistKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to set denylist key: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been revoked.
func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	exists, err := d.client.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check denylist key: %w", err)
	}
	return exists > 0, nil
}
