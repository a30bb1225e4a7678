package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemory(WithClock(func() time.Time { return now }))

	ok, err := s.IsVerified(ctx, "did:key:a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.MarkVerified(ctx, "did:key:a", time.Minute))
	require.NoError(t, s.MarkVerified(ctx, "did:key:b", time.Hour))

	ok, err = s.IsVerified(ctx, "did:key:a")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Minute)
	ok, err = s.IsVerified(ctx, "did:key:a")
	require.NoError(t, err)
	assert.False(t, ok, "expires exactly at the ttl")

	ok, err = s.IsVerified(ctx, "did:key:b")
	require.NoError(t, err)
	assert.True(t, ok, "keys expire independently")

	require.NoError(t, s.Clear(ctx, "did:key:b"))
	ok, err = s.IsVerified(ctx, "did:key:b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemory(WithClock(func() time.Time { return now }))

	require.NoError(t, s.MarkVerified(ctx, "did:key:a", time.Second))
	require.NoError(t, s.MarkVerified(ctx, "did:key:b", time.Second))
	require.NoError(t, s.MarkVerified(ctx, "did:key:c", time.Hour))

	now = now.Add(2 * time.Second)
	assert.Equal(t, 2, s.Sweep())
	assert.Equal(t, 0, s.Sweep())
}
