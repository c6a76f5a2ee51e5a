package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projectflow/backend/logging"
	"projectflow/backend/workflow-service/interfaces"
	"projectflow/backend/workflow-service/models"
)

var (
	ErrMissingTaskIDs      = errors.New("missing task IDs")
	ErrTaskNotFound        = errors.New("one or both tasks do not exist")
	ErrDependencyExists    = errors.New("dependency already exists")
	ErrCycleDetected       = errors.New("cannot add dependency: cycle detected")
	ErrDependencyNotFound  = errors.New("dependency does not exist")
	ErrInvalidTaskNode     = errors.New("task node needs an id")
	ErrMissingProjectIDArg = errors.New("missing project id")
)

type WorkflowService struct {
	store interfaces.GraphStore
}

func NewWorkflowService(store interfaces.GraphStore) *WorkflowService {
	return &WorkflowService{store: store}
}

func (s *WorkflowService) EnsureTaskNode(ctx context.Context, task models.TaskNode) error {
	if strings.TrimSpace(task.ID) == "" {
		return ErrInvalidTaskNode
	}
	if err := s.store.EnsureTaskNode(ctx, task); err != nil {
		return fmt.Errorf("failed to ensure task node: %w", err)
	}
	// only the node's own flag is refreshed; dependants pick up changes on their next edge update
	return s.UpdateBlockedStatus(ctx, task.ID)
}

// AddDependency records that rel.ToTaskID depends on rel.FromTaskID. Unknown
// tasks, duplicates and links that would close a cycle are rejected.
func (s *WorkflowService) AddDependency(ctx context.Context, rel models.TaskDependencyRelation) error {
	if rel.FromTaskID == "" || rel.ToTaskID == "" {
		return ErrMissingTaskIDs
	}

	exist, err := s.store.TasksExist(ctx, rel.FromTaskID, rel.ToTaskID)
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exist {
		return ErrTaskNotFound
	}

	exists, err := s.store.DependencyExists(ctx, rel.FromTaskID, rel.ToTaskID)
	if err != nil {
		return fmt.Errorf("failed to check if dependency exists: %w", err)
	}
	if exists {
		return ErrDependencyExists
	}

	hasCycle, err := s.CreatesCycle(ctx, rel.FromTaskID, rel.ToTaskID)
	if err != nil {
		return fmt.Errorf("failed to check cycle: %w", err)
	}
	if hasCycle {
		return ErrCycleDetected
	}

	if err := s.store.CreateDependency(ctx, rel.FromTaskID, rel.ToTaskID); err != nil {
		return err
	}
	logging.Logger.Infof("Event ID: DEPENDENCY_ADDED, Description: Dependency added: %s <- %s", rel.ToTaskID, rel.FromTaskID)
	return nil
}

// CreatesCycle is true when fromID already depends, directly or not, on toID.
func (s *WorkflowService) CreatesCycle(ctx context.Context, fromID, toID string) (bool, error) {
	if fromID == toID {
		return true, nil
	}
	return s.store.PathExists(ctx, fromID, toID)
}

func (s *WorkflowService) RemoveDependency(ctx context.Context, fromTaskID, toTaskID string) error {
	if fromTaskID == "" || toTaskID == "" {
		return ErrMissingTaskIDs
	}
	deleted, err := s.store.DeleteDependency(ctx, fromTaskID, toTaskID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDependencyNotFound
	}
	logging.Logger.Infof("Event ID: DEPENDENCY_REMOVED, Description: Dependency removed: %s <- %s", toTaskID, fromTaskID)
	return nil
}

// isSettled reports whether a dependency no longer holds its dependants back.
func isSettled(status string) bool {
	switch strings.ToLower(strings.ReplaceAll(status, " ", "-")) {
	case "in-progress", "completed":
		return true
	}
	return false
}

// UpdateBlockedStatus marks a task blocked when any dependency is neither in progress nor completed.
func (s *WorkflowService) UpdateBlockedStatus(ctx context.Context, taskID string) error {
	dependencies, err := s.store.GetDependencies(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to fetch dependencies: %w", err)
	}

	isBlocked := false
	for _, dep := range dependencies {
		if !isSettled(dep.Status) {
			isBlocked = true
			break
		}
	}

	if err := s.store.SetBlocked(ctx, taskID, isBlocked); err != nil {
		return err
	}
	logging.Logger.Debugf("Blocked status for task %s updated to %v", taskID, isBlocked)
	return nil
}

func (s *WorkflowService) GetDependencies(ctx context.Context, taskID string) ([]models.TaskNode, error) {
	return s.store.GetDependencies(ctx, taskID)
}

func (s *WorkflowService) GetWorkflowGraph(ctx context.Context, projectID string) (models.WorkflowGraph, error) {
	if projectID == "" {
		return models.WorkflowGraph{}, ErrMissingProjectIDArg
	}
	nodes, deps, err := s.store.GetProjectGraph(ctx, projectID)
	if err != nil {
		return models.WorkflowGraph{}, err
	}
	return models.WorkflowGraph{ProjectID: projectID, Nodes: nodes, Dependencies: deps}, nil
}
