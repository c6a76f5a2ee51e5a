package repositories

import (
	"context"

	"projectflow/backend/workflow-service/interfaces"
	"projectflow/backend/workflow-service/models"
)

// SeedNodes mirrors the mock task board so the graph is usable before any task is created.
func SeedNodes() []models.TaskNode {
	return []models.TaskNode{
		{ID: "1", ProjectID: "Website Redesign", Name: "Design homepage wireframes", Status: "in-progress"},
		{ID: "2", ProjectID: "Website Redesign", Name: "User research analysis", Status: "completed"},
		{ID: "3", ProjectID: "Mobile App", Name: "API endpoint development", Status: "todo"},
		{ID: "4", ProjectID: "Mobile App", Name: "Database schema design", Status: "in-progress"},
		{ID: "5", ProjectID: "Marketing Campaign", Name: "Marketing content creation", Status: "review"},
		{ID: "6", ProjectID: "Mobile App", Name: "Mobile UI components", Status: "todo"},
	}
}

// SeedDependencies are the task-level links of the mock board.
func SeedDependencies() []models.TaskDependencyRelation {
	return []models.TaskDependencyRelation{
		{FromTaskID: "2", ToTaskID: "1"},
		{FromTaskID: "4", ToTaskID: "3"},
	}
}

// Seed writes the mock nodes and links into store.
func Seed(ctx context.Context, store interfaces.GraphStore) error {
	for _, node := range SeedNodes() {
		if err := store.EnsureTaskNode(ctx, node); err != nil {
			return err
		}
	}
	for _, dep := range SeedDependencies() {
		if err := store.CreateDependency(ctx, dep.FromTaskID, dep.ToTaskID); err != nil {
			return err
		}
	}
	return nil
}
