package models

type GraphNode struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Blocked bool   `json:"blocked"`
}

type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GraphResponse joins a project's tasks with the workflow dependencies between them.
type GraphResponse struct {
	Project string      `json:"project"`
	Nodes   []GraphNode `json:"nodes"`
	Edges   []GraphEdge `json:"edges"`
}

// remote shapes, decoded from tasks-service and workflow-service

type RemoteTask struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Project string `json:"project"`
}

type RemoteWorkflowGraph struct {
	Nodes []struct {
		ID      string `json:"id"`
		Blocked bool   `json:"blocked"`
	} `json:"nodes"`
	Dependencies []struct {
		FromTaskID string `json:"fromTaskId"`
		ToTaskID   string `json:"toTaskId"`
	} `json:"dependencies"`
}
