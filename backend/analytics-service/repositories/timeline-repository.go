package repositories

import (
	"context"
	"sync"

	"projectflow/backend/analytics-service/models"
)

// TimelineRepository serves the Gantt and team datasets.
type TimelineRepository interface {
	GetTasks(ctx context.Context) ([]models.TimelineTask, error)
	GetProjects(ctx context.Context) ([]models.TimelineProject, error)
	GetTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

type MemoryTimelineRepository struct {
	mu       sync.RWMutex
	tasks    []models.TimelineTask
	projects []models.TimelineProject
	members  []models.TeamMember
}

func NewMemoryTimelineRepository(tasks []models.TimelineTask, projects []models.TimelineProject, members []models.TeamMember) *MemoryTimelineRepository {
	return &MemoryTimelineRepository{tasks: tasks, projects: projects, members: members}
}

// NewSeededTimelineRepository loads the bundled mock data.
func NewSeededTimelineRepository() *MemoryTimelineRepository {
	return NewMemoryTimelineRepository(SeedTimelineTasks(), SeedTimelineProjects(), SeedTeamMembers())
}

func (r *MemoryTimelineRepository) GetTasks(_ context.Context) ([]models.TimelineTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.TimelineTask(nil), r.tasks...), nil
}

func (r *MemoryTimelineRepository) GetProjects(_ context.Context) ([]models.TimelineProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.TimelineProject(nil), r.projects...), nil
}

func (r *MemoryTimelineRepository) GetTeamMembers(_ context.Context) ([]models.TeamMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.TeamMember(nil), r.members...), nil
}
