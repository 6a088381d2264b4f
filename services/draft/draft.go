package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gigbook/models"
)

// Store keeps partially completed intake forms keyed by the client's session,
// so a half-filled multi-step form survives a reload. Drafts expire on their
// own; nothing here touches the bookings collection.
type Store interface {
	Save(ctx context.Context, sessionID string, d models.BookingDraft) error
	Load(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// ErrDraftNotFound is returned when no draft exists for the session.
var ErrDraftNotFound = fmt.Errorf("draft not found")

// RedisStore implements Store on a Redis client with a per-draft TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

// Draft keys live in their own namespace so a flush of one session can never
// touch another, and so unrelated keys in the same Redis DB stay out of reach.
func draftKey(sessionID string) string {
	return "draft:" + sessionID
}

// encodeDraft stamps the save time and serializes the draft for storage.
func encodeDraft(d models.BookingDraft) ([]byte, error) {
	d.SavedAt = time.Now().UTC()
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}
	return data, nil
}

func decodeDraft(data []byte) (*models.BookingDraft, error) {
	var d models.BookingDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &d, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, d models.BookingDraft) error {
	data, err := encodeDraft(d)
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, draftKey(sessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draft: %w", err)
	}
	return decodeDraft([]byte(data))
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
