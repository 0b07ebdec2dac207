// Package cache is a thin JSON cache over Redis for the hot read paths:
// user rows, document listings, the pending payment queue, and IP block
// lookups. Writers invalidate the affected keys so reads after a mutation
// see fresh data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per key family. Kept short: correctness comes from invalidation on
// write, the TTL only bounds staleness when an invalidation is missed.
const (
	UserTTL            = 60 * time.Second
	AdminDocsTTL       = 300 * time.Second
	UserDocsTTL        = 120 * time.Second
	PendingPaymentsTTL = 60 * time.Second
	IPBlockedTTL       = 30 * time.Second
)

type Cache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{client: client}, nil
}

// NewWithClient wraps an existing client, used by tests with miniredis.
func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Get unmarshals the cached value for key into result. The boolean reports
// whether the key was present.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores value as JSON under key for the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Key helpers.

func UserKey(email string) string     { return "user:" + email }
func UserDocsKey(email string) string { return "userdocs:" + email }
func IPBlockedKey(ip string) string   { return "ipblocked:" + ip }
func AdminDocsKey() string            { return "admindocs" }
func PendingPaymentsKey() string      { return "pending_payments" }

// InvalidateUser drops the cached user row and their document listing.
func (c *Cache) InvalidateUser(ctx context.Context, email string) error {
	return c.Delete(ctx, UserKey(email), UserDocsKey(email))
}

// InvalidatePayments drops the pending payment queue snapshot.
func (c *Cache) InvalidatePayments(ctx context.Context) error {
	return c.Delete(ctx, PendingPaymentsKey())
}

// InvalidateAdminDocs drops the admin document listing.
func (c *Cache) InvalidateAdminDocs(ctx context.Context) error {
	return c.Delete(ctx, AdminDocsKey())
}
