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

func setupRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestCheckoutGuard_SecondAcquireDenied(t *testing.T) {
	client, _ := setupRedis(t)
	guard := NewCheckoutGuard(client, 30*time.Second)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckoutGuard_ReleaseAllowsReacquire(t *testing.T) {
	client, _ := setupRedis(t)
	guard := NewCheckoutGuard(client, 30*time.Second)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, 1))

	ok, err = guard.Acquire(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckoutGuard_LockIsPerCustomer(t *testing.T) {
	client, _ := setupRedis(t)
	guard := NewCheckoutGuard(client, 30*time.Second)
	ctx := context.Background()

	ok, _ := guard.Acquire(ctx, 1)
	require.True(t, ok)

	ok, err := guard.Acquire(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckoutGuard_ExpiresOnItsOwn(t *testing.T) {
	client, mr := setupRedis(t)
	guard := NewCheckoutGuard(client, 2*time.Second)
	ctx := context.Background()

	ok, _ := guard.Acquire(ctx, 1)
	require.True(t, ok)

	// Si le process meurt sans Release, le TTL libère le verrou
	mr.FastForward(3 * time.Second)

	ok, err := guard.Acquire(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenBlacklist_RevokedUntilExpiry(t *testing.T) {
	client, mr := setupRedis(t)
	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	require.NoError(t, blacklist.Revoke(ctx, "jti-123", time.Minute))
	assert.True(t, blacklist.IsRevoked(ctx, "jti-123"))
	assert.False(t, blacklist.IsRevoked(ctx, "jti-autre"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, blacklist.IsRevoked(ctx, "jti-123"))
}

func TestTokenBlacklist_ExpiredTokenNotStored(t *testing.T) {
	client, mr := setupRedis(t)
	blacklist := NewTokenBlacklist(client)

	require.NoError(t, blacklist.Revoke(context.Background(), "jti-123", -time.Minute))
	assert.False(t, mr.Exists("blacklist:jti-123"))
}
