package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/tasks-service/models"
	"projectflow/backend/tasks-service/repositories"
	"projectflow/backend/utils"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("status must be one of todo, in-progress, review, completed")
	ErrInvalidPriority = errors.New("priority must be one of low, medium, high, critical")
	ErrInvalidDueDate  = errors.New("dueDate must be formatted as YYYY-MM-DD")
)

// ReferenceDate is the "today" of the mock dataset, used for overdue counts.
var ReferenceDate = time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

var columnTitles = map[models.TaskStatus]string{
	models.StatusTodo:       "To Do",
	models.StatusInProgress: "In Progress",
	models.StatusReview:     "Review",
	models.StatusCompleted:  "Completed",
}

type TaskService struct {
	repo     repositories.TaskRepository
	workflow *utils.ServiceClient
	delay    time.Duration
}

// NewTaskService wires the task store. workflow may be nil, in which case new
// tasks are not registered with the dependency graph.
func NewTaskService(repo repositories.TaskRepository, workflow *utils.ServiceClient, delay time.Duration) *TaskService {
	return &TaskService{repo: repo, workflow: workflow, delay: delay}
}

// Predicates turns a filter into the AND-ed list used by ListTasks and Kanban.
func Predicates(f models.TaskFilter) []utils.Predicate[models.Task] {
	return []utils.Predicate[models.Task]{
		func(t models.Task) bool { return utils.MatchesSearch(f.Search, t.Title, t.Description) },
		func(t models.Task) bool { return utils.MatchesOption(f.Status, string(t.Status)) },
		func(t models.Task) bool { return utils.MatchesOption(f.Priority, string(t.Priority)) },
		func(t models.Task) bool { return matchesProject(f.Project, t.Project) },
		func(t models.Task) bool { return utils.MatchesOption(f.Assignee, t.Assignee.ID) },
	}
}

// matchesProject accepts either the project name or its slug.
func matchesProject(filter, project string) bool {
	return utils.MatchesOption(filter, project) || filter == utils.Slug(project)
}

func (s *TaskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return utils.Filter(tasks, Predicates(filter)...), nil
}

// Kanban groups the filtered tasks into the four fixed columns.
func (s *TaskService) Kanban(ctx context.Context, filter models.TaskFilter) (models.KanbanBoard, error) {
	tasks, err := s.ListTasks(ctx, filter)
	if err != nil {
		return models.KanbanBoard{}, err
	}
	return GroupByStatus(tasks), nil
}

// GroupByStatus buckets tasks by status in board order. Tasks with a status
// outside the four columns are left out.
func GroupByStatus(tasks []models.Task) models.KanbanBoard {
	board := models.KanbanBoard{Columns: make([]models.KanbanColumn, 0, len(models.KanbanStatuses))}
	for _, status := range models.KanbanStatuses {
		column := models.KanbanColumn{ID: status, Title: columnTitles[status], Tasks: []models.Task{}}
		for _, t := range tasks {
			if t.Status == status {
				column.Tasks = append(column.Tasks, t)
			}
		}
		column.Count = len(column.Tasks)
		board.Total += column.Count
		board.Columns = append(board.Columns, column)
	}
	return board
}

func (s *TaskService) Stats(ctx context.Context, asOf time.Time) (models.TaskStats, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return models.TaskStats{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	stats := models.TaskStats{
		Total:    len(tasks),
		ByStatus: make(map[models.TaskStatus]int, len(models.KanbanStatuses)),
		AsOf:     asOf.Format(models.DateLayout),
		Cards:    repositories.StatCards(),
	}
	for _, status := range models.KanbanStatuses {
		stats.ByStatus[status] = 0
	}
	for _, t := range tasks {
		stats.ByStatus[t.Status]++
		if t.IsOverdue(asOf) {
			stats.Overdue++
		}
	}
	return stats, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateTask validates the request, waits out the simulated latency and stores
// the task. Dependencies are stored as given.
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest, headers http.Header) (*models.Task, error) {
	task, err := buildTask(req)
	if err != nil {
		return nil, err
	}

	created, err := utils.Simulate(ctx, s.delay, func() (*models.Task, error) {
		return s.repo.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %s '%s' created", created.ID, created.Title)

	s.registerNode(ctx, created, headers)
	return created, nil
}

func buildTask(req models.CreateTaskRequest) (models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.StatusTodo
	}
	if !status.Valid() {
		return models.Task{}, ErrInvalidStatus
	}

	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}

	if req.DueDate != "" {
		if _, err := time.Parse(models.DateLayout, req.DueDate); err != nil {
			return models.Task{}, ErrInvalidDueDate
		}
	}

	project := req.Project
	if name, ok := repositories.ProjectNames[project]; ok {
		project = name
	}

	assignee := models.Assignee{ID: req.Assignee, Name: req.Assignee}
	if name, ok := repositories.Directory[req.Assignee]; ok {
		assignee.Name = name
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	deps := req.Dependencies
	if deps == nil {
		deps = []string{}
	}

	return models.Task{
		Title:          title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		Project:        project,
		Assignee:       assignee,
		DueDate:        req.DueDate,
		CreatedDate:    time.Now().UTC().Format(models.DateLayout),
		EstimatedHours: req.EstimatedHours,
		Tags:           tags,
		Dependencies:   deps,
	}, nil
}

// registerNode tells the workflow service about the new task. Failures are logged only.
func (s *TaskService) registerNode(ctx context.Context, task *models.Task, headers http.Header) {
	if s.workflow == nil {
		return
	}
	node := models.TaskNode{
		ID:          task.ID,
		ProjectID:   task.Project,
		Name:        task.Title,
		Description: task.Description,
		Status:      string(task.Status),
	}
	if err := s.workflow.PostJSON(ctx, "/api/workflow/task-node", headers, node, nil); err != nil {
		logging.Logger.Warnf("Event ID: WORKFLOW_NODE_FAILED, Description: Could not register task %s with workflow-service: %v", task.ID, err)
	}
}
