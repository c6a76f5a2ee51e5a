package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/projects-service/models"
	"projectflow/backend/projects-service/repositories"
	"projectflow/backend/utils"
)

const dateLayout = "2006-01-02"

var (
	ErrNameRequired    = errors.New("project name is required")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrInvalidStatus   = errors.New("status must be one of Planning, In Progress, Review, Completed")
	ErrInvalidPriority = errors.New("priority must be one of Low, Medium, High, Critical")
	ErrInvalidDates    = errors.New("dates must be YYYY-MM-DD and startDate must not be after endDate")
	ErrNegativeValue   = errors.New("teamMembers and budget must not be negative")
)

type ProjectService struct {
	repo  repositories.ProjectRepository
	delay time.Duration
}

func NewProjectService(repo repositories.ProjectRepository, delay time.Duration) *ProjectService {
	return &ProjectService{repo: repo, delay: delay}
}

func (s *ProjectService) ListProjects(ctx context.Context, f models.ProjectFilter) ([]models.Project, error) {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	return utils.Filter(projects,
		func(p models.Project) bool { return utils.MatchesSearch(f.Search, p.Name, p.Description) },
		func(p models.Project) bool { return utils.MatchesOption(f.Status, string(p.Status)) },
		func(p models.Project) bool { return utils.MatchesOption(f.Priority, string(p.Priority)) },
	), nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	project, err := buildProject(req)
	if err != nil {
		return nil, err
	}

	created, err := utils.Simulate(ctx, s.delay, func() (*models.Project, error) {
		return s.repo.Create(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: PROJECT_CREATED, Description: Project %s '%s' created", created.ID, created.Name)
	return created, nil
}

func buildProject(req models.CreateProjectRequest) (models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Project{}, ErrNameRequired
	}
	if req.Progress < 0 || req.Progress > 100 {
		return models.Project{}, ErrInvalidProgress
	}
	if req.TeamMembers < 0 || req.Budget < 0 {
		return models.Project{}, ErrNegativeValue
	}

	status := models.ProjectStatus(req.Status)
	if status == "" {
		status = models.StatusPlanning
	}
	if !status.Valid() {
		return models.Project{}, ErrInvalidStatus
	}

	priority := models.ProjectPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return models.Project{}, ErrInvalidPriority
	}

	if err := validateDates(req.StartDate, req.EndDate); err != nil {
		return models.Project{}, err
	}

	return models.Project{
		Name:        name,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Progress:    req.Progress,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TeamMembers: req.TeamMembers,
		Budget:      req.Budget,
		Manager:     req.Manager,
	}, nil
}

// validateDates allows either date to be missing.
func validateDates(start, end string) error {
	var startDate, endDate time.Time
	var err error
	if start != "" {
		if startDate, err = time.Parse(dateLayout, start); err != nil {
			return ErrInvalidDates
		}
	}
	if end != "" {
		if endDate, err = time.Parse(dateLayout, end); err != nil {
			return ErrInvalidDates
		}
	}
	if start != "" && end != "" && startDate.After(endDate) {
		return ErrInvalidDates
	}
	return nil
}
