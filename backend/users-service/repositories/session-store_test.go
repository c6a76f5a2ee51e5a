package repositories

import (
	"context"
	"testing"
	"time"

	"projectflow/backend/users-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{AccessToken: "t1", UserData: models.User{Email: "a@b.c"}}, time.Minute))

	got, err := store.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.UserData.Email)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrSessionNotFound)
	require.NoError(t, store.Save(ctx, models.Session{AccessToken: "t2"}, 0))
	require.NoError(t, store.Delete(ctx, "t2"))
	_, err := store.Get(ctx, "t2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryUserRepositoryNormalizesEmail(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, models.User{Email: " Ana@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "4", created.ID)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.Create(ctx, models.User{Email: "ANA@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
