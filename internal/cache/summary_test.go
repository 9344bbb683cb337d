package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
)

func newTestSummary(t *testing.T) (*Summary, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSummary(client), mr
}

func TestSummaryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSummary(t)

	_, ok := s.Get(ctx, 7)
	assert.False(t, ok)

	want := domain.TaskCounts{Total: 5, Completed: 2}
	s.Set(ctx, 7, want)

	got, ok := s.Get(ctx, 7)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// other projects are unaffected
	_, ok = s.Get(ctx, 8)
	assert.False(t, ok)
}

func TestSummaryInvalidate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSummary(t)

	s.Set(ctx, 7, domain.TaskCounts{Total: 1, Completed: 1})
	s.Invalidate(ctx, 7)

	_, ok := s.Get(ctx, 7)
	assert.False(t, ok)
}

func TestSummaryEntriesExpire(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestSummary(t)

	s.Set(ctx, 7, domain.TaskCounts{Total: 3, Completed: 0})
	mr.FastForward(defaultTTL + time.Second)

	_, ok := s.Get(ctx, 7)
	assert.False(t, ok)
}

func TestSummaryNilIsNoop(t *testing.T) {
	ctx := context.Background()
	var s *Summary

	s.Set(ctx, 7, domain.TaskCounts{Total: 1})
	s.Invalidate(ctx, 7)

	_, ok := s.Get(ctx, 7)
	assert.False(t, ok)
}

func TestSummaryIgnoresCorruptPayload(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestSummary(t)

	require.NoError(t, mr.Set("tr:counts:9", "{not json"))

	_, ok := s.Get(ctx, 9)
	assert.False(t, ok)
}
