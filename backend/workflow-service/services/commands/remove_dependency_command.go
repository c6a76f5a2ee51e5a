package commands

import (
	"context"
	"fmt"

	"projectflow/backend/workflow-service/interfaces"
)

type RemoveDependencyCommand struct {
	FromTaskID string
	ToTaskID   string
}

type RemoveDependencyHandler struct {
	GraphService interfaces.WorkflowCommandContext
}

func NewRemoveDependencyHandler(ctx interfaces.WorkflowCommandContext) *RemoveDependencyHandler {
	return &RemoveDependencyHandler{GraphService: ctx}
}

func (h *RemoveDependencyHandler) Handle(ctx context.Context, cmd RemoveDependencyCommand) error {
	if err := h.GraphService.RemoveDependency(ctx, cmd.FromTaskID, cmd.ToTaskID); err != nil {
		return fmt.Errorf("failed to remove dependency: %w", err)
	}

	updateCmd := UpdateBlockedStatusCommand{
		TaskID: cmd.ToTaskID,
		Svc:    h.GraphService,
	}
	return updateCmd.Execute(ctx)
}
