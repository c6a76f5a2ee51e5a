package queries

import (
	"context"

	"projectflow/backend/workflow-service/interfaces"
	"projectflow/backend/workflow-service/models"
)

type GetDependenciesQuery struct {
	TaskID string
	Svc    interfaces.WorkflowQueryContext
}

func (q *GetDependenciesQuery) Execute(ctx context.Context) ([]models.TaskNode, error) {
	return q.Svc.GetDependencies(ctx, q.TaskID)
}

type GetWorkflowGraphQuery struct {
	ProjectID string
	Svc       interfaces.WorkflowQueryContext
}

func (q *GetWorkflowGraphQuery) Execute(ctx context.Context) (models.WorkflowGraph, error) {
	return q.Svc.GetWorkflowGraph(ctx, q.ProjectID)
}
