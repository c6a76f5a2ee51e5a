package repositories

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"projectflow/backend/tasks-service/models"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, task models.Task) (*models.Task, error)
}

// MemoryTaskRepository keeps tasks in a slice in insertion order.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  []models.Task
	nextID int
}

func NewMemoryTaskRepository(seed []models.Task) *MemoryTaskRepository {
	repo := &MemoryTaskRepository{tasks: make([]models.Task, 0, len(seed))}
	for _, t := range seed {
		repo.tasks = append(repo.tasks, t)
		if n, err := strconv.Atoi(t.ID); err == nil && n > repo.nextID {
			repo.nextID = n
		}
	}
	return repo
}

func (r *MemoryTaskRepository) GetAll(_ context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

func (r *MemoryTaskRepository) GetByID(_ context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			task := t
			return &task, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (r *MemoryTaskRepository) Create(_ context.Context, task models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = strconv.Itoa(r.nextID)
	r.tasks = append(r.tasks, task)
	return &task, nil
}
