package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tutor-match-be/internal/constant"
	"tutor-match-be/pkg/store"
)

const keyPrefix = "chat:session:"

// SessionRepository persists chat sessions as JSON blobs in redis so
// conversations survive restarts and are shared across instances.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.ChatSession, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		session := store.NewChatSession(id, constant.GreetingMessage, time.Now())
		if err := r.Put(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session store.ChatSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	session.LastAccessedAt = time.Now()

	// Slide the expiration on read so an active conversation never expires
	// mid-booking. The write-back also persists the access time.
	if err := r.Put(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Put(ctx context.Context, session *store.ChatSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.Id, err)
	}
	if err := r.client.Set(ctx, keyPrefix+session.Id, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis put session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Reset(ctx context.Context, id string) (*store.ChatSession, error) {
	session := store.NewChatSession(id, constant.GreetingMessage, time.Now())
	if err := r.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
