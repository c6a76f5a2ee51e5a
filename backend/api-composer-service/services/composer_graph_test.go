package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectflow/backend/api-composer-service/models"
	taskhandlers "projectflow/backend/tasks-service/handlers"
	taskrepos "projectflow/backend/tasks-service/repositories"
	taskservices "projectflow/backend/tasks-service/services"
	workflowhandlers "projectflow/backend/workflow-service/handlers"
	workflowrepos "projectflow/backend/workflow-service/repositories"
	workflowservices "projectflow/backend/workflow-service/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededBackends(t *testing.T) (*httptest.Server, *httptest.Server) {
	t.Helper()

	th := taskhandlers.NewTaskHandler(taskservices.NewTaskService(taskrepos.NewMemoryTaskRepository(taskrepos.SeedTasks()), nil, 0))
	tr := mux.NewRouter()
	tr.HandleFunc("/api/tasks", th.GetTasks).Methods(http.MethodGet)
	tasks := httptest.NewServer(tr)
	t.Cleanup(tasks.Close)

	store := workflowrepos.NewMemoryGraphStore()
	require.NoError(t, workflowrepos.Seed(context.Background(), store))
	wh := workflowhandlers.NewWorkflowHandler(workflowservices.NewWorkflowService(store))
	wr := mux.NewRouter()
	wr.HandleFunc("/api/workflow/graph/{projectId}", wh.GetWorkflowGraph).Methods(http.MethodGet)
	workflow := httptest.NewServer(wr)
	t.Cleanup(workflow.Close)

	return tasks, workflow
}

func TestGraphSlugAndNameAgree(t *testing.T) {
	tasks, workflow := seededBackends(t)
	svc := NewComposerService(nil, client("tasks", tasks), nil, client("workflow", workflow))

	byName, err := svc.Graph(context.Background(), "Website Redesign", http.Header{})
	require.NoError(t, err)
	bySlug, err := svc.Graph(context.Background(), "website-redesign", http.Header{})
	require.NoError(t, err)

	assert.Len(t, bySlug.Nodes, 2)
	assert.Equal(t, []models.GraphEdge{{From: "2", To: "1"}}, bySlug.Edges)
	assert.Equal(t, byName.Nodes, bySlug.Nodes)
	assert.Equal(t, byName.Edges, bySlug.Edges)
}

func TestGraphWildcardCoversEveryProject(t *testing.T) {
	tasks, workflow := seededBackends(t)
	svc := NewComposerService(nil, client("tasks", tasks), nil, client("workflow", workflow))

	graph, err := svc.Graph(context.Background(), "all", http.Header{})
	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 6)
	assert.ElementsMatch(t, []models.GraphEdge{{From: "2", To: "1"}, {From: "4", To: "3"}}, graph.Edges)
}

func TestProjectNames(t *testing.T) {
	assert.Equal(t, []string{"key"}, projectNames(nil, "key"))
	assert.Equal(t, []string{"A", "B"}, projectNames([]models.RemoteTask{{Project: "B"}, {Project: "A"}, {Project: "B"}}, "key"))
}
