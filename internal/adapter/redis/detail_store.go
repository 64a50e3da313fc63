package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/quizly-backend/internal/domain"
)

const (
	detailKeyPrefix = "quiz_result"
	scanBatch       = 256
)

// Client is the subset of the go-redis API the stores need.
type Client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// DetailStore keeps per-question answer records of quiz attempts for a limited time.
// Keys have the form quiz_result:{user}:{company}:{quiz}:{result}.
type DetailStore struct {
	client Client
	ttl    time.Duration
}

// NewDetailStore creates a DetailStore whose records expire after ttl.
func NewDetailStore(client Client, ttl time.Duration) *DetailStore {
	return &DetailStore{client: client, ttl: ttl}
}

// DetailKey returns the storage key of one record.
func DetailKey(d domain.ResultDetail) string {
	return strings.Join([]string{
		detailKeyPrefix,
		d.UserID.String(),
		d.CompanyID.String(),
		d.QuizID.String(),
		d.ResultID.String(),
	}, ":")
}

func pattern(f domain.DetailFilter) string {
	part := func(id *uuid.UUID) string {
		if id == nil {
			return "*"
		}
		return id.String()
	}
	return strings.Join([]string{detailKeyPrefix, part(f.UserID), part(f.CompanyID), part(f.QuizID), "*"}, ":")
}

// Save stores a record with the configured TTL.
func (s *DetailStore) Save(ctx context.Context, d domain.ResultDetail) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal result detail: %w", err)
	}
	if err := s.client.Set(ctx, DetailKey(d), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save result detail %s: %w", d.ResultID, err)
	}
	return nil
}

// Find returns every live record matching the filter, oldest attempt first.
func (s *DetailStore) Find(ctx context.Context, f domain.DetailFilter) ([]domain.ResultDetail, error) {
	keys, err := s.scan(ctx, pattern(f))
	if err != nil {
		return nil, err
	}

	details := make([]domain.ResultDetail, 0, len(keys))
	for chunk := range slices.Chunk(keys, scanBatch) {
		values, err := s.client.MGet(ctx, chunk...).Result()
		if err != nil {
			return nil, fmt.Errorf("load result details: %w", err)
		}
		for i, v := range values {
			raw, ok := v.(string)
			if !ok {
				// expired between SCAN and MGET
				continue
			}
			var d domain.ResultDetail
			if err := json.Unmarshal([]byte(raw), &d); err != nil {
				return nil, fmt.Errorf("decode result detail %s: %w", chunk[i], err)
			}
			details = append(details, d)
		}
	}

	slices.SortFunc(details, func(a, b domain.ResultDetail) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return details, nil
}

// Delete removes every record matching the filter and returns how many went.
func (s *DetailStore) Delete(ctx context.Context, f domain.DetailFilter) (int, error) {
	keys, err := s.scan(ctx, pattern(f))
	if err != nil {
		return 0, err
	}

	var removed int64
	for chunk := range slices.Chunk(keys, scanBatch) {
		n, err := s.client.Del(ctx, chunk...).Result()
		if err != nil {
			return int(removed), fmt.Errorf("delete result details: %w", err)
		}
		removed += n
	}
	return int(removed), nil
}

func (s *DetailStore) scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// Ping checks that Redis is reachable.
func (s *DetailStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
