package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"projectflow/api-gateway/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "gateway-test-secret"

// echoBackend answers with the path and Role header it received.
func echoBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://elsewhere")
		_, _ = w.Write([]byte(r.URL.RequestURI() + "|" + r.Header.Get("Role")))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, backend string) http.Handler {
	t.Helper()
	r, err := newRouter([]route{
		{prefix: "/api/auth", target: backend, public: true},
		{prefix: "/api/tasks", target: backend},
	}, utils.NewTokenValidator(testSecret))
	require.NoError(t, err)
	return r
}

func signed(t *testing.T, secret, role string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.Claims{
		Email:            "jane@example.com",
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func do(r http.Handler, method, path, token string, extra map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(""))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRoutesAreOpenAndDropClientRole(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	rec := do(r, http.MethodPost, "/api/auth/login", "", map[string]string{"Role": "Admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/auth/login|", rec.Body.String())
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/tasks", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/tasks", "not-a-jwt", nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "fake-admin-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDemoTokenForwardsRole(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	rec := do(r, http.MethodGet, "/api/tasks/kanban?status=todo", "fake-planner-token", map[string]string{"Role": "Admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/tasks/kanban?status=todo|Planner", rec.Body.String())
	assert.Empty(t, rec.Header().Values("Access-Control-Allow-Origin"))
}

func TestJWTForwardsRole(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	rec := do(r, http.MethodGet, "/api/tasks", signed(t, testSecret, "developer", time.Now().Add(time.Hour)), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/tasks|developer", rec.Body.String())
}

func TestJWTRejections(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	expired := signed(t, testSecret, "developer", time.Now().Add(-time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/tasks", expired, nil).Code)

	forged := signed(t, "other-secret", "Admin", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/tasks", forged, nil).Code)

	roleless := signed(t, testSecret, "", time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/tasks", roleless, nil).Code)
}

func TestUnreachableBackendIsBadGateway(t *testing.T) {
	backend := echoBackend(t)
	url := backend.URL
	backend.Close()

	r := newTestRouter(t, url)
	assert.Equal(t, http.StatusBadGateway, do(r, http.MethodGet, "/api/tasks", "fake-admin-token", nil).Code)
}

func TestUnknownAreaIsNotFound(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/unknown", "fake-admin-token", nil).Code)
}

func TestPrefixStopsAtSegmentBoundary(t *testing.T) {
	r := newTestRouter(t, echoBackend(t).URL)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/authz/admin", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/tasksfoo", "fake-admin-token", nil).Code)

	rec := do(r, http.MethodGet, "/api/tasks", "fake-admin-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/tasks|Admin", rec.Body.String())

	rec = do(r, http.MethodGet, "/api/tasks/3", "fake-admin-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/tasks/3|Admin", rec.Body.String())
}
