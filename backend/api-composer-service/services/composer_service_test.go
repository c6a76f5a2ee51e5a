package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectflow/backend/api-composer-service/models"
	"projectflow/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	projectsJSON = `[
		{"id":"1","name":"Website Redesign","status":"In Progress","progress":75,"startDate":"2024-01-01","endDate":"2024-01-15","teamMembers":5},
		{"id":"2","name":"Mobile App Development","status":"Planning","progress":25,"startDate":"2024-01-10","endDate":"2024-02-28","teamMembers":8},
		{"id":"3","name":"Marketing Campaign Q1","status":"Review","progress":90,"startDate":"2023-12-15","endDate":"2024-01-10","teamMembers":3},
		{"id":"4","name":"Infrastructure Upgrade","status":"Completed","progress":100,"startDate":"2023-11-01","endDate":"2023-12-20","teamMembers":4}
	]`
	statsJSON = `{"total":6,"byStatus":{"todo":2,"in-progress":2,"review":1,"completed":1},"overdue":2,"asOf":"2024-01-10"}`
	teamJSON  = `{"totals":{"members":5,"byStatus":{"active":4,"busy":1}}}`
)

func fixedServer(t *testing.T, status int, body string, seen *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.Header.Clone()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func client(name string, srv *httptest.Server) *utils.ServiceClient {
	return utils.NewServiceClient(name, srv.URL, srv.Client())
}

func cardValue(t *testing.T, overview models.Overview, title string) string {
	t.Helper()
	for _, c := range overview.Stats {
		if c.Title == title {
			return c.Value
		}
	}
	t.Fatalf("missing card %q", title)
	return ""
}

func TestOverviewComposesAllSources(t *testing.T) {
	var seen http.Header
	svc := NewComposerService(
		client("projects", fixedServer(t, http.StatusOK, projectsJSON, &seen)),
		client("tasks", fixedServer(t, http.StatusOK, statsJSON, nil)),
		client("analytics", fixedServer(t, http.StatusOK, teamJSON, nil)),
		nil,
	)

	headers := http.Header{}
	headers.Set("Role", "Admin")
	overview := svc.Overview(context.Background(), headers, "")

	assert.Empty(t, overview.Warnings)
	assert.Equal(t, "3", cardValue(t, overview, "Active Projects"))
	assert.Equal(t, "1", cardValue(t, overview, "Completed Tasks"))
	assert.Equal(t, "5", cardValue(t, overview, "Team Members"))
	assert.Equal(t, "2", cardValue(t, overview, "Overdue Tasks"))
	assert.Equal(t, "Admin", seen.Get("Role"))

	require.Len(t, overview.RecentProjects, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{overview.RecentProjects[0].ID, overview.RecentProjects[1].ID, overview.RecentProjects[2].ID})
	assert.Equal(t, "2024-02-28", overview.RecentProjects[0].DueDate)
	assert.Equal(t, 8, overview.RecentProjects[0].Team)
}

func TestOverviewDegradesFailingSource(t *testing.T) {
	svc := NewComposerService(
		client("projects", fixedServer(t, http.StatusOK, projectsJSON, nil)),
		client("tasks", fixedServer(t, http.StatusInternalServerError, "boom", nil)),
		client("analytics", fixedServer(t, http.StatusOK, teamJSON, nil)),
		nil,
	)

	overview := svc.Overview(context.Background(), http.Header{}, "")

	assert.Equal(t, []string{"tasks unavailable"}, overview.Warnings)
	assert.Equal(t, "0", cardValue(t, overview, "Completed Tasks"))
	assert.Equal(t, "0", cardValue(t, overview, "Overdue Tasks"))
	assert.Equal(t, "3", cardValue(t, overview, "Active Projects"))
	assert.Len(t, overview.RecentProjects, 3)
}

func TestOverviewAllSourcesDown(t *testing.T) {
	down := fixedServer(t, http.StatusServiceUnavailable, "", nil)
	svc := NewComposerService(client("p", down), client("t", down), client("a", down), nil)

	overview := svc.Overview(context.Background(), http.Header{}, "")
	assert.Len(t, overview.Warnings, 3)
	assert.Empty(t, overview.RecentProjects)
	for _, c := range overview.Stats {
		assert.Equal(t, "0", c.Value, c.Title)
	}
}

func TestOverviewForwardsReferenceDate(t *testing.T) {
	var query string
	tasks := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(statsJSON))
	}))
	defer tasks.Close()

	svc := NewComposerService(
		client("projects", fixedServer(t, http.StatusOK, "[]", nil)),
		client("tasks", tasks),
		client("analytics", fixedServer(t, http.StatusOK, teamJSON, nil)),
		nil,
	)
	svc.Overview(context.Background(), http.Header{}, "2024-01-20")
	assert.Equal(t, "asOf=2024-01-20", query)
}

func TestRecentProjectsLimit(t *testing.T) {
	assert.Empty(t, RecentProjects(nil, 3))

	recent := RecentProjects([]models.RemoteProject{{ID: "a", StartDate: "2024-01-01"}}, 3)
	require.Len(t, recent, 1)
	assert.Equal(t, "a", recent[0].ID)
}

func TestGraphJoinsTasksAndDependencies(t *testing.T) {
	var taskPath string
	tasks := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		taskPath = r.URL.RequestURI()
		_, _ = w.Write([]byte(`[{"id":"3","title":"API endpoint development","status":"todo"},{"id":"4","title":"Database schema design","status":"in-progress"}]`))
	}))
	defer tasks.Close()

	var workflowPath string
	workflow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workflowPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"nodes":[{"id":"3","blocked":false},{"id":"4","blocked":false}],"dependencies":[{"fromTaskId":"4","toTaskId":"3"},{"fromTaskId":"9","toTaskId":"3"}]}`))
	}))
	defer workflow.Close()

	svc := NewComposerService(nil, client("tasks", tasks), nil, client("workflow", workflow))
	graph, err := svc.Graph(context.Background(), "Mobile App", http.Header{})
	require.NoError(t, err)

	assert.Equal(t, "/api/tasks?project=Mobile+App", taskPath)
	assert.Equal(t, "/api/workflow/graph/Mobile%20App", workflowPath)
	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, []models.GraphEdge{{From: "4", To: "3"}}, graph.Edges)
}

func TestGraphFailsWhenWorkflowDown(t *testing.T) {
	svc := NewComposerService(nil,
		client("tasks", fixedServer(t, http.StatusOK, "[]", nil)),
		nil,
		client("workflow", fixedServer(t, http.StatusInternalServerError, "down", nil)),
	)
	_, err := svc.Graph(context.Background(), "Website Redesign", http.Header{})
	var statusErr *utils.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}
