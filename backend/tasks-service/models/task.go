package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusCompleted  TaskStatus = "completed"
)

// KanbanStatuses is the fixed column order of the board.
var KanbanStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}

func (s TaskStatus) Valid() bool {
	for _, status := range KanbanStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Assignee struct {
	ID     string `json:"id" bson:"id"`
	Name   string `json:"name" bson:"name"`
	Avatar string `json:"avatar" bson:"avatar"`
}

// Task.Project holds the project name, not its id.
type Task struct {
	ID             string       `json:"id" bson:"_id"`
	Title          string       `json:"title" bson:"title"`
	Description    string       `json:"description" bson:"description"`
	Status         TaskStatus   `json:"status" bson:"status"`
	Priority       TaskPriority `json:"priority" bson:"priority"`
	Project        string       `json:"project" bson:"project"`
	Assignee       Assignee     `json:"assignee" bson:"assignee"`
	DueDate        string       `json:"dueDate" bson:"dueDate"`
	CreatedDate    string       `json:"createdDate,omitempty" bson:"createdDate,omitempty"`
	EstimatedHours float64      `json:"estimatedHours" bson:"estimatedHours"`
	CompletedHours float64      `json:"completedHours" bson:"completedHours"`
	Tags           []string     `json:"tags" bson:"tags"`
	Dependencies   []string     `json:"dependencies" bson:"dependencies"`
}

// DateLayout is the calendar-date format used by every date field.
const DateLayout = "2006-01-02"

// IsOverdue reports whether an unfinished task was due before asOf.
func (t Task) IsOverdue(asOf time.Time) bool {
	if t.Status == StatusCompleted || t.DueDate == "" {
		return false
	}
	due, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(asOf)
}

// TaskFilter holds the list filters. Empty fields and "all" match every task.
type TaskFilter struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Project  string `json:"project"`
	Assignee string `json:"assignee"`
}

type CreateTaskRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	Status         string   `json:"status"`
	Project        string   `json:"project"`
	Assignee       string   `json:"assignee"`
	EstimatedHours float64  `json:"estimatedHours"`
	DueDate        string   `json:"dueDate"`
	Tags           []string `json:"tags"`
	Dependencies   []string `json:"dependencies"`
}

type KanbanColumn struct {
	ID    TaskStatus `json:"id"`
	Title string     `json:"title"`
	Count int        `json:"count"`
	Tasks []Task     `json:"tasks"`
}

type KanbanBoard struct {
	Columns []KanbanColumn `json:"columns"`
	Total   int            `json:"total"`
}

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type TaskStats struct {
	Total    int                `json:"total"`
	ByStatus map[TaskStatus]int `json:"byStatus"`
	Overdue  int                `json:"overdue"`
	AsOf     string             `json:"asOf"`
	Cards    []StatCard         `json:"cards"`
}

// TaskNode is what the workflow service stores for each task.
type TaskNode struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
