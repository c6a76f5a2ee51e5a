package services

import (
	"context"
	"testing"

	"projectflow/backend/workflow-service/models"
	"projectflow/backend/workflow-service/repositories"
	"projectflow/backend/workflow-service/services/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *WorkflowService {
	t.Helper()
	store := repositories.NewMemoryGraphStore()
	require.NoError(t, repositories.Seed(context.Background(), store))
	return NewWorkflowService(store)
}

func rel(from, to string) models.TaskDependencyRelation {
	return models.TaskDependencyRelation{FromTaskID: from, ToTaskID: to}
}

func TestAddDependencyRejectsUnknownDuplicateAndCycle(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddDependency(ctx, rel("", "1")), ErrMissingTaskIDs)
	assert.ErrorIs(t, svc.AddDependency(ctx, rel("1", "99")), ErrTaskNotFound)
	// 1 already depends on 2
	assert.ErrorIs(t, svc.AddDependency(ctx, rel("2", "1")), ErrDependencyExists)
	// 2 depending on 1 would close 1 -> 2 -> 1
	assert.ErrorIs(t, svc.AddDependency(ctx, rel("1", "2")), ErrCycleDetected)
	assert.ErrorIs(t, svc.AddDependency(ctx, rel("5", "5")), ErrCycleDetected)
}

func TestAddDependencyRejectsTransitiveCycle(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	// 6 depends on 3, 3 depends on 4
	require.NoError(t, svc.AddDependency(ctx, rel("3", "6")))
	// 4 depending on 6 would close 6 -> 3 -> 4 -> 6
	assert.ErrorIs(t, svc.AddDependency(ctx, rel("6", "4")), ErrCycleDetected)
}

func TestBlockedStatusFollowsDependencies(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()
	handler := commands.NewAddDependencyHandler(svc)

	// 6 depends on 3, which is still todo
	require.NoError(t, handler.Handle(ctx, commands.AddDependencyCommand{Dependency: rel("3", "6")}))
	graph, err := svc.GetWorkflowGraph(ctx, "Mobile App")
	require.NoError(t, err)
	assert.True(t, nodeByID(graph.Nodes, "6").Blocked)

	// removing the link unblocks it again
	remove := commands.NewRemoveDependencyHandler(svc)
	require.NoError(t, remove.Handle(ctx, commands.RemoveDependencyCommand{FromTaskID: "3", ToTaskID: "6"}))
	graph, err = svc.GetWorkflowGraph(ctx, "Mobile App")
	require.NoError(t, err)
	assert.False(t, nodeByID(graph.Nodes, "6").Blocked)

	// an in-progress dependency does not block
	require.NoError(t, handler.Handle(ctx, commands.AddDependencyCommand{Dependency: rel("4", "6")}))
	graph, err = svc.GetWorkflowGraph(ctx, "Mobile App")
	require.NoError(t, err)
	assert.False(t, nodeByID(graph.Nodes, "6").Blocked)
}

func nodeByID(nodes []models.TaskNode, id string) models.TaskNode {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	return models.TaskNode{}
}

func TestRemoveMissingDependency(t *testing.T) {
	svc := newSeededService(t)
	assert.ErrorIs(t, svc.RemoveDependency(context.Background(), "5", "6"), ErrDependencyNotFound)
}

func TestEnsureTaskNodeAndGraph(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.EnsureTaskNode(ctx, models.TaskNode{}), ErrInvalidTaskNode)
	require.NoError(t, svc.EnsureTaskNode(ctx, models.TaskNode{ID: "7", ProjectID: "Website Redesign", Name: "Launch", Status: "todo"}))
	require.NoError(t, svc.AddDependency(ctx, rel("1", "7")))

	graph, err := svc.GetWorkflowGraph(ctx, "Website Redesign")
	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 3)
	assert.Equal(t, []models.TaskDependencyRelation{rel("2", "1"), rel("1", "7")}, graph.Dependencies)

	deps, err := svc.GetDependencies(ctx, "7")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "Design homepage wireframes", deps[0].Name)

	_, err = svc.GetWorkflowGraph(ctx, "")
	assert.ErrorIs(t, err, ErrMissingProjectIDArg)
}

func TestIsSettled(t *testing.T) {
	assert.True(t, isSettled("in-progress"))
	assert.True(t, isSettled("In progress"))
	assert.True(t, isSettled("Completed"))
	assert.False(t, isSettled("todo"))
	assert.False(t, isSettled("review"))
}
