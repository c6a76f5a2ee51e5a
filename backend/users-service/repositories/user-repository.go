package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"projectflow/backend/users-service/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]models.User
	nextID int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	// ids 1-3 belong to the demo accounts
	return &MemoryUserRepository{users: make(map[string]models.User), nextID: 3}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, user models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.users[key]; exists {
		return nil, ErrEmailTaken
	}
	r.nextID++
	user.ID = strconv.Itoa(r.nextID)
	user.Email = key
	r.users[key] = user
	return &user, nil
}
