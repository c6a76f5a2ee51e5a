package services

import (
	"context"
	"testing"

	"projectflow/backend/analytics-service/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalPathFallsBackToDefault(t *testing.T) {
	svc := NewAnalyticsService(repositories.NewSeededTimelineRepository())

	website := svc.CriticalPath("1")
	assert.Equal(t, "Website Redesign", website.ProjectName)
	assert.Equal(t, 15, website.TotalDuration)
	assert.Len(t, website.CriticalPath, 5)
	assert.Len(t, website.Risks, 2)

	all := svc.CriticalPath("all")
	assert.Equal(t, "All Projects", all.ProjectName)
	assert.Equal(t, 45, all.TotalDuration)

	assert.Equal(t, website, svc.CriticalPath("2"))
	assert.Equal(t, website, svc.CriticalPath(""))
}

func TestTeamTotals(t *testing.T) {
	svc := NewAnalyticsService(repositories.NewSeededTimelineRepository())

	team, err := svc.Team(context.Background())
	require.NoError(t, err)
	assert.Len(t, team.Members, 5)
	assert.Len(t, team.WeeklyProductivity, 4)
	assert.Len(t, team.TopPerformers, 3)

	totals := team.Totals
	assert.Equal(t, 5, totals.Members)
	assert.Equal(t, 124, totals.TasksCompleted)
	assert.Equal(t, 142, totals.TasksAssigned)
	assert.Equal(t, 728, totals.HoursLogged)
	assert.InDelta(t, 87.5, totals.AverageEfficiency, 1e-9)
	assert.Equal(t, map[string]int{"active": 4, "busy": 1}, totals.ByStatus)
}

func TestTeamTotalsEmpty(t *testing.T) {
	totals := TeamTotals(nil)
	assert.Zero(t, totals.Members)
	assert.Zero(t, totals.AverageEfficiency)
}

func TestProjectsAndStats(t *testing.T) {
	svc := NewAnalyticsService(repositories.NewSeededTimelineRepository())

	projects, err := svc.Projects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	stats := svc.Stats()
	require.Len(t, stats, 4)
	assert.Equal(t, "Active Projects", stats[0].Title)
	assert.Equal(t, "85%", stats[2].Value)
}
