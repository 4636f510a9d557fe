// Package insightcache provides volatile storage for generated insights.
// Insights are derived data; losing the cache only means regenerating.
package insightcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifeos/backend/internal/application/adapter"
	"github.com/lifeos/backend/internal/domain/entity"
	domainerror "github.com/lifeos/backend/internal/domain/error"
)

// redisStore implements the adapter.InsightStore interface on Redis.
// Each user's insights live under a single key as a JSON array.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed insight store. A ttl of zero
// keeps insights until the next Replace or Clear.
func NewRedisStore(client *redis.Client, ttl time.Duration) adapter.InsightStore {
	return &redisStore{client: client, ttl: ttl}
}

func insightKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:%s", userID)
}

// Replace overwrites the stored insight list for a user.
func (s *redisStore) Replace(ctx context.Context, userID uuid.UUID, insights []entity.Insight) error {
	if insights == nil {
		insights = []entity.Insight{}
	}

	payload, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("failed to marshal insights: %w", err)
	}

	if err := s.client.Set(ctx, insightKey(userID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrInsightStoreUnavailable, err)
	}
	return nil
}

// List retrieves the stored insight list for a user. A missing key is an
// empty list, not an error.
func (s *redisStore) List(ctx context.Context, userID uuid.UUID) ([]entity.Insight, error) {
	payload, err := s.client.Get(ctx, insightKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []entity.Insight{}, nil
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInsightStoreUnavailable, err)
	}

	var insights []entity.Insight
	if err := json.Unmarshal(payload, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insights: %w", err)
	}
	return insights, nil
}

// Clear removes all stored insights for a user.
func (s *redisStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, insightKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrInsightStoreUnavailable, err)
	}
	return nil
}
