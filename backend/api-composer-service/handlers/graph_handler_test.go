package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectflow/backend/api-composer-service/models"
	"projectflow/backend/api-composer-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(t *testing.T, status int, body string) *utils.ServiceClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return utils.NewServiceClient(t.Name(), srv.URL, srv.Client())
}

func newRouter(svc *services.ComposerService) *mux.Router {
	h := NewComposerHandler(svc)
	r := mux.NewRouter()
	r.HandleFunc("/api/dashboard/overview", h.GetOverview).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/graph/{projectId}", h.GetGraph).Methods(http.MethodGet)
	return r
}

func TestGetOverviewAlwaysAnswers(t *testing.T) {
	svc := services.NewComposerService(
		stub(t, http.StatusOK, `[]`),
		stub(t, http.StatusBadGateway, ""),
		stub(t, http.StatusOK, `{"totals":{"members":5}}`),
		nil,
	)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var overview models.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, []string{"tasks unavailable"}, overview.Warnings)
	assert.Len(t, overview.Stats, 4)
}

func TestGetGraphMapsDownstreamErrors(t *testing.T) {
	notFound := services.NewComposerService(nil, stub(t, http.StatusOK, `[]`), nil, stub(t, http.StatusNotFound, "no such project"))
	rec := httptest.NewRecorder()
	newRouter(notFound).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/graph/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	broken := services.NewComposerService(nil, stub(t, http.StatusInternalServerError, "boom"), nil, stub(t, http.StatusOK, `{}`))
	rec = httptest.NewRecorder()
	newRouter(broken).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/graph/ghost", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
