package models

type TaskNode struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Blocked     bool   `json:"blocked"`
}

// TaskDependencyRelation means ToTaskID depends on FromTaskID.
type TaskDependencyRelation struct {
	FromTaskID string `json:"fromTaskId"`
	ToTaskID   string `json:"toTaskId"`
}

type WorkflowGraph struct {
	ProjectID    string                   `json:"projectId"`
	Nodes        []TaskNode               `json:"nodes"`
	Dependencies []TaskDependencyRelation `json:"dependencies"`
}
