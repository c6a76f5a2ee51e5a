package services

import (
	"context"
	"fmt"
	"math"

	"projectflow/backend/analytics-service/models"
	"projectflow/backend/analytics-service/repositories"
)

type AnalyticsService struct {
	repo          repositories.TimelineRepository
	criticalPaths map[string]models.CriticalPath
}

func NewAnalyticsService(repo repositories.TimelineRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo, criticalPaths: repositories.CriticalPaths()}
}

func (s *AnalyticsService) Projects(ctx context.Context) ([]models.TimelineProject, error) {
	projects, err := s.repo.GetProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timeline projects: %w", err)
	}
	return projects, nil
}

// CriticalPath returns the analysis for a project key, falling back to the
// default project when the key has none.
func (s *AnalyticsService) CriticalPath(project string) models.CriticalPath {
	if cp, ok := s.criticalPaths[project]; ok {
		return cp
	}
	return s.criticalPaths[repositories.DefaultCriticalPath]
}

func (s *AnalyticsService) Team(ctx context.Context) (models.TeamAnalytics, error) {
	members, err := s.repo.GetTeamMembers(ctx)
	if err != nil {
		return models.TeamAnalytics{}, fmt.Errorf("failed to load team members: %w", err)
	}
	return models.TeamAnalytics{
		Members:            members,
		WeeklyProductivity: repositories.WeeklyProductivity(),
		TopPerformers:      repositories.TopPerformers(),
		Totals:             TeamTotals(members),
	}, nil
}

// TeamTotals sums the member rows. Average efficiency is rounded to one decimal.
func TeamTotals(members []models.TeamMember) models.TeamTotals {
	totals := models.TeamTotals{Members: len(members), ByStatus: map[string]int{}}
	var efficiency float64
	for _, m := range members {
		totals.ByStatus[m.Status]++
		totals.TasksCompleted += m.TasksCompleted
		totals.TasksAssigned += m.TasksAssigned
		totals.HoursLogged += m.HoursLogged
		efficiency += m.Efficiency
	}
	if len(members) > 0 {
		totals.AverageEfficiency = math.Round(efficiency/float64(len(members))*10) / 10
	}
	return totals
}

func (s *AnalyticsService) Stats() []models.StatCard {
	return repositories.GanttStats()
}
