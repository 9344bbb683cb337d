package cache

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
)

const (
	countsKeyPrefix = "tr:counts:" // tr:counts:{project_id} -> {"total":N,"completed":M}
	defaultTTL      = 10 * time.Minute
)

// Summary is a read-through Redis cache of per-project task counts. A nil
// *Summary is a no-op, so callers never branch on whether caching is enabled.
// Entries are TTL-bounded and invalidated on task mutations; counts can still
// be briefly stale under concurrent writes, which is accepted.
type Summary struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummary(client *redis.Client) *Summary {
	return &Summary{client: client, ttl: defaultTTL}
}

func (s *Summary) Get(ctx context.Context, projectID int64) (domain.TaskCounts, bool) {
	if s == nil {
		return domain.TaskCounts{}, false
	}

	raw, err := s.client.Get(ctx, s.key(projectID)).Bytes()
	if err != nil {
		return domain.TaskCounts{}, false
	}

	var payload struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.TaskCounts{}, false
	}
	return domain.TaskCounts{Total: payload.Total, Completed: payload.Completed}, true
}

func (s *Summary) Set(ctx context.Context, projectID int64, c domain.TaskCounts) {
	if s == nil {
		return
	}

	raw, err := json.Marshal(struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
	}{c.Total, c.Completed})
	if err != nil {
		return
	}

	if err := s.client.Set(ctx, s.key(projectID), raw, s.ttl).Err(); err != nil {
		log.Printf("counts cache set failed: %v", err)
	}
}

func (s *Summary) Invalidate(ctx context.Context, projectID int64) {
	if s == nil {
		return
	}
	if err := s.client.Del(ctx, s.key(projectID)).Err(); err != nil {
		log.Printf("counts cache invalidate failed: %v", err)
	}
}

func (s *Summary) key(projectID int64) string {
	return countsKeyPrefix + strconv.FormatInt(projectID, 10)
}
