package identity

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
)

// Metadata is the public metadata the marketplace keeps on a provider user.
type Metadata struct {
	HasProfile bool
}

type MetadataStore interface {
	UpdateUserMetadata(ctx context.Context, userID string, md Metadata) error
	GetUserMetadata(ctx context.Context, userID string) (Metadata, error)
}

// ======================================================
// Redis
// ======================================================

const metadataKeyPrefix = "identity:metadata:"

type RedisMetadataStore struct {
	client *redis.Client
}

func NewRedisMetadataStore(client *redis.Client) *RedisMetadataStore {
	return &RedisMetadataStore{client: client}
}

func (s *RedisMetadataStore) UpdateUserMetadata(ctx context.Context, userID string, md Metadata) error {
	return s.client.HSet(ctx, metadataKeyPrefix+userID, "has_profile", strconv.FormatBool(md.HasProfile)).Err()
}

func (s *RedisMetadataStore) GetUserMetadata(ctx context.Context, userID string) (Metadata, error) {
	v, err := s.client.HGet(ctx, metadataKeyPrefix+userID, "has_profile").Result()
	if errors.Is(err, redis.Nil) {
		return Metadata{}, nil
	}
	if err != nil {
		return Metadata{}, err
	}

	has, _ := strconv.ParseBool(v)
	return Metadata{HasProfile: has}, nil
}

// ======================================================
// In-process
// ======================================================

type MemoryMetadataStore struct {
	mu   sync.RWMutex
	data map[string]Metadata
}

func NewMemoryMetadataStore() *MemoryMetadataStore {
	return &MemoryMetadataStore{data: make(map[string]Metadata)}
}

func (s *MemoryMetadataStore) UpdateUserMetadata(_ context.Context, userID string, md Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = md
	return nil
}

func (s *MemoryMetadataStore) GetUserMetadata(_ context.Context, userID string) (Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[userID], nil
}

var (
	_ MetadataStore = (*RedisMetadataStore)(nil)
	_ MetadataStore = (*MemoryMetadataStore)(nil)
)
