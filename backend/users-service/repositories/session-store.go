package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"projectflow/backend/users-service/models"

	"github.com/redis/go-redis/v9"
)

const (
	// field names the dashboard reads back
	SessionTokenKey = "access_token"
	SessionUserKey  = "user_data"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionStore interface {
	Save(ctx context.Context, session models.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

func sessionKey(token string) string {
	return "session:" + token
}

// RedisSessionStore keeps each session in a hash with the two dashboard keys.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	userData, err := json.Marshal(session.UserData)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}

	key := sessionKey(session.AccessToken)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, SessionTokenKey, session.AccessToken, SessionUserKey, string(userData))
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	values, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrSessionNotFound
	}

	session := &models.Session{AccessToken: values[SessionTokenKey]}
	if err := json.Unmarshal([]byte(values[SessionUserKey]), &session.UserData); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	n, err := s.client.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

type memorySession struct {
	session   models.Session
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession), now: time.Now}
}

func (s *MemorySessionStore) Save(_ context.Context, session models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memorySession{session: session}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.sessions[session.AccessToken] = entry
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[token]
	if !ok || (!entry.expiresAt.IsZero() && s.now().After(entry.expiresAt)) {
		return nil, ErrSessionNotFound
	}
	session := entry.session
	return &session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, token)
	return nil
}
