package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"tutor-match-be/internal/constant"
	"tutor-match-be/pkg/store"
)

// SessionRepository keeps chat sessions in process memory with a sliding
// expiration. Suitable for a single instance; use the redis backend when
// running more than one.
type SessionRepository struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: gocache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.ChatSession, error) {
	if v, ok := r.cache.Get(id); ok {
		session := v.(*store.ChatSession)
		session.LastAccessedAt = time.Now()
		r.cache.Set(id, session, r.ttl)
		return session, nil
	}
	session := store.NewChatSession(id, constant.GreetingMessage, time.Now())
	r.cache.Set(id, session, r.ttl)
	return session, nil
}

func (r *SessionRepository) Put(ctx context.Context, session *store.ChatSession) error {
	r.cache.Set(session.Id, session, r.ttl)
	return nil
}

func (r *SessionRepository) Reset(ctx context.Context, id string) (*store.ChatSession, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Reset(constant.GreetingMessage, time.Now())
	r.cache.Set(id, session, r.ttl)
	return session, nil
}
