package commands

import (
	"context"
	"fmt"

	"projectflow/backend/logging"
	"projectflow/backend/workflow-service/interfaces"
	"projectflow/backend/workflow-service/models"
)

type AddDependencyCommand struct {
	Dependency models.TaskDependencyRelation
}

type AddDependencyHandler struct {
	GraphService interfaces.WorkflowCommandContext
}

func NewAddDependencyHandler(ctx interfaces.WorkflowCommandContext) *AddDependencyHandler {
	return &AddDependencyHandler{GraphService: ctx}
}

func (h *AddDependencyHandler) Handle(ctx context.Context, cmd AddDependencyCommand) error {
	if err := h.GraphService.AddDependency(ctx, cmd.Dependency); err != nil {
		return fmt.Errorf("failed to add dependency: %w", err)
	}

	updateCmd := UpdateBlockedStatusCommand{
		TaskID: cmd.Dependency.ToTaskID,
		Svc:    h.GraphService,
	}
	if err := updateCmd.Execute(ctx); err != nil {
		logging.Logger.Warnf("Event ID: BLOCKED_UPDATE_FAILED, Description: dependency added, but failed to update blocked status: %v", err)
	}
	return nil
}
