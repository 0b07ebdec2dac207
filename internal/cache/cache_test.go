package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewWithClient(client)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

type cachedUser struct {
	Email     string `json:"email"`
	Remaining int    `json:"remaining"`
}

func TestSetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	err := c.Set(ctx, UserKey("a@b.com"), cachedUser{Email: "a@b.com", Remaining: 15}, UserTTL)
	require.NoError(t, err)

	var got cachedUser
	found, err := c.Get(ctx, UserKey("a@b.com"), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, 15, got.Remaining)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got cachedUser
	found, err := c.Get(context.Background(), UserKey("nobody@b.com"), &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetAfterTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, IPBlockedKey("10.0.0.1"), true, IPBlockedTTL))

	mr.FastForward(IPBlockedTTL + time.Second)

	var blocked bool
	found, err := c.Get(ctx, IPBlockedKey("10.0.0.1"), &blocked)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateUserDropsBothKeys(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, UserKey("a@b.com"), cachedUser{Email: "a@b.com"}, UserTTL))
	require.NoError(t, c.Set(ctx, UserDocsKey("a@b.com"), []string{"doc1"}, UserDocsTTL))

	require.NoError(t, c.InvalidateUser(ctx, "a@b.com"))

	var user cachedUser
	found, err := c.Get(ctx, UserKey("a@b.com"), &user)
	require.NoError(t, err)
	assert.False(t, found)

	var docs []string
	found, err = c.Get(ctx, UserDocsKey("a@b.com"), &docs)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	c, _ := newTestCache(t)

	assert.NoError(t, c.Delete(context.Background(), "never-set"))
	assert.NoError(t, c.Delete(context.Background()))
}
