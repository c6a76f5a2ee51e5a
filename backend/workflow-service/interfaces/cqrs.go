package interfaces

import (
	"context"

	"projectflow/backend/workflow-service/models"
)

type WorkflowCommandContext interface {
	AddDependency(ctx context.Context, dependency models.TaskDependencyRelation) error
	UpdateBlockedStatus(ctx context.Context, taskID string) error
	RemoveDependency(ctx context.Context, fromTaskID, toTaskID string) error
}

type WorkflowQueryContext interface {
	GetDependencies(ctx context.Context, taskID string) ([]models.TaskNode, error)
	GetWorkflowGraph(ctx context.Context, projectID string) (models.WorkflowGraph, error)
}

// GraphStore is the persistence behind the workflow service. Checks such as
// cycle detection live in the service, the store only answers questions.
type GraphStore interface {
	EnsureTaskNode(ctx context.Context, task models.TaskNode) error
	TasksExist(ctx context.Context, ids ...string) (bool, error)
	DependencyExists(ctx context.Context, fromID, toID string) (bool, error)
	// PathExists reports whether fromID transitively depends on toID.
	PathExists(ctx context.Context, fromID, toID string) (bool, error)
	CreateDependency(ctx context.Context, fromID, toID string) error
	DeleteDependency(ctx context.Context, fromID, toID string) (bool, error)
	GetDependencies(ctx context.Context, taskID string) ([]models.TaskNode, error)
	SetBlocked(ctx context.Context, taskID string, blocked bool) error
	GetProjectGraph(ctx context.Context, projectID string) ([]models.TaskNode, []models.TaskDependencyRelation, error)
}
