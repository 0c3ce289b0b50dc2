package session

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rahulkv/movieguess/internal/catalog"
)

const redisSessionKeyPrefix = "session:movie:"

// RedisStore keeps bindings in Redis so they survive restarts and can be
// expired. SetNX makes the create path atomic per key; when two first
// requests race, the loser reads the winner's movie back.
type RedisStore struct {
	client *redis.Client
	pool   *catalog.Pool
	ttl    time.Duration // zero means no expiry
	logger zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRedisStore(client *redis.Client, pool *catalog.Pool, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		pool:   pool,
		ttl:    ttl,
		logger: logger.With().Str("component", "session_store").Logger(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *RedisStore) GetOrCreate(ctx context.Context, sessionID string) (catalog.Movie, error) {
	key := redisSessionKeyPrefix + sessionID

	if movie, err := s.get(ctx, key); err == nil {
		return movie, nil
	} else if err != redis.Nil {
		return catalog.Movie{}, fmt.Errorf("get session binding: %w", err)
	}

	if s.pool.Len() == 0 {
		return catalog.Movie{}, ErrEmptyPool
	}
	candidate := s.pool.At(s.draw())

	payload, err := json.Marshal(candidate)
	if err != nil {
		return catalog.Movie{}, fmt.Errorf("marshal binding: %w", err)
	}
	bound, err := s.client.SetNX(ctx, key, payload, s.ttl).Result()
	if err != nil {
		return catalog.Movie{}, fmt.Errorf("bind session: %w", err)
	}
	if bound {
		s.logger.Debug().Str("session_id", sessionID).Msg("session bound")
		return candidate, nil
	}

	// lost the race, the winner's binding stands
	movie, err := s.get(ctx, key)
	if err != nil {
		return catalog.Movie{}, fmt.Errorf("read winning binding: %w", err)
	}
	return movie, nil
}

func (s *RedisStore) get(ctx context.Context, key string) (catalog.Movie, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return catalog.Movie{}, err
	}
	var movie catalog.Movie
	if err := json.Unmarshal(data, &movie); err != nil {
		return catalog.Movie{}, err
	}
	return movie, nil
}

func (s *RedisStore) draw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(s.pool.Len())
}
