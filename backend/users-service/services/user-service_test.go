package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"projectflow/backend/users-service/models"
	"projectflow/backend/users-service/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingUsers struct{}

func (failingUsers) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection refused")
}

func (failingUsers) Create(context.Context, models.User) (*models.User, error) {
	return nil, errors.New("connection refused")
}

func newUserService() (*UserService, *repositories.MemorySessionStore) {
	sessions := repositories.NewMemorySessionStore()
	svc := NewUserService(repositories.NewMemoryUserRepository(), sessions, NewJWTService("test-secret", time.Hour), 0, time.Hour)
	return svc, sessions
}

func TestLoginDemoAdmin(t *testing.T) {
	svc, sessions := newUserService()
	ctx := context.Background()

	resp, err := svc.LoginUser(ctx, "admin@projectflow.com", "admin123")
	require.NoError(t, err)

	assert.Equal(t, "fake-admin-token", resp.Data.AccessToken)
	assert.Equal(t, "/dashboard", resp.Redirect)
	assert.Equal(t, "Admin", resp.Data.User.Role.Name)
	assert.Equal(t, 1, resp.Data.User.Role.Level)

	session, err := sessions.Get(ctx, "fake-admin-token")
	require.NoError(t, err)
	assert.Equal(t, "fake-admin-token", session.AccessToken)
	assert.Equal(t, "admin@projectflow.com", session.UserData.Email)
}

func TestLoginDemoAccounts(t *testing.T) {
	svc, _ := newUserService()

	for _, tc := range []struct{ email, password, token, role string }{
		{"planner@projectflow.com", "planner123", "fake-planner-token", "Planner"},
		{"viewer@projectflow.com", "viewer123", "fake-viewer-token", "Viewer"},
	} {
		resp, err := svc.LoginUser(context.Background(), tc.email, tc.password)
		require.NoError(t, err)
		assert.Equal(t, tc.token, resp.Data.AccessToken)
		assert.Equal(t, tc.role, resp.Data.User.Role.Name)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.LoginUser(context.Background(), "admin@projectflow.com", "admin1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginUser(context.Background(), "nobody@projectflow.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStoreFailureIsNotCredentialError(t *testing.T) {
	svc := NewUserService(failingUsers{}, repositories.NewMemorySessionStore(), NewJWTService("s", time.Hour), 0, 0)

	_, err := svc.LoginUser(context.Background(), "someone@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	// a long delay proves the mismatch path never waits
	svc := NewUserService(repositories.NewMemoryUserRepository(), repositories.NewMemorySessionStore(), NewJWTService("s", time.Hour), time.Minute, 0)

	start := time.Now()
	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:           "new@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, "Las contraseñas no coinciden", err.Error())
	assert.Less(t, time.Since(start), time.Second)
}

func TestRegisterThenLogin(t *testing.T) {
	svc, sessions := newUserService()
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, models.RegisterRequest{
		FirstName:       "Ana",
		LastName:        "Lopez",
		Email:           "Ana@Example.com",
		Password:        "s3cret!",
		ConfirmPassword: "s3cret!",
		Role:            "team-lead",
		Company:         "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "team-lead", user.Role.Name)
	assert.Len(t, user.VerificationCode, 6)
	assert.NotEqual(t, "s3cret!", user.Password)

	resp, err := svc.LoginUser(ctx, "ana@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", resp.Redirect)

	claims, err := svc.jwtService.ValidateToken(resp.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "team-lead", claims.Role)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = sessions.Get(ctx, resp.Data.AccessToken)
	require.NoError(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.RegisterUser(ctx, models.RegisterRequest{Email: "a@b.c", Password: "x", ConfirmPassword: "x", Role: "owner"})
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = svc.RegisterUser(ctx, models.RegisterRequest{Email: "ADMIN@projectflow.com", Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)

	_, err = svc.RegisterUser(ctx, models.RegisterRequest{Email: "dup@b.c", Password: "x", ConfirmPassword: "x"})
	require.NoError(t, err)
	_, err = svc.RegisterUser(ctx, models.RegisterRequest{Email: "dup@b.c", Password: "y", ConfirmPassword: "y"})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestLogout(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.LoginUser(ctx, "viewer@projectflow.com", "viewer123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, "fake-viewer-token"))
	_, err = svc.GetSession(ctx, "fake-viewer-token")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}

func TestJWTRejectsOtherSecret(t *testing.T) {
	token, err := NewJWTService("one", time.Hour).GenerateAuthToken(models.User{ID: "9", Email: "a@b.c", Role: models.Role{Name: "developer"}})
	require.NoError(t, err)

	_, err = NewJWTService("two", time.Hour).ValidateToken(token)
	assert.Error(t, err)

	expired, err := NewJWTService("one", -time.Minute).GenerateAuthToken(models.User{ID: "9"})
	require.NoError(t, err)
	_, err = NewJWTService("one", time.Hour).ValidateToken(expired)
	assert.Error(t, err)
}
