package repositories

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"projectflow/backend/projects-service/models"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, project models.Project) (*models.Project, error)
}

type MemoryProjectRepository struct {
	mu       sync.RWMutex
	projects []models.Project
	nextID   int
}

func NewMemoryProjectRepository(seed []models.Project) *MemoryProjectRepository {
	repo := &MemoryProjectRepository{projects: append([]models.Project(nil), seed...)}
	for _, p := range seed {
		if n, err := strconv.Atoi(p.ID); err == nil && n > repo.nextID {
			repo.nextID = n
		}
	}
	return repo
}

func (r *MemoryProjectRepository) GetAll(_ context.Context) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Project{}, r.projects...), nil
}

func (r *MemoryProjectRepository) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if p.ID == id {
			project := p
			return &project, nil
		}
	}
	return nil, ErrProjectNotFound
}

func (r *MemoryProjectRepository) Create(_ context.Context, project models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	project.ID = strconv.Itoa(r.nextID)
	r.projects = append(r.projects, project)
	return &project, nil
}
