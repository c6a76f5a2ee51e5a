package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"projectflow/backend/api-composer-service/models"
	"projectflow/backend/logging"
	"projectflow/backend/utils"
)

const recentProjectLimit = 3

// ComposerService fans out to the other services. Each client carries its own breaker.
type ComposerService struct {
	projects  *utils.ServiceClient
	tasks     *utils.ServiceClient
	analytics *utils.ServiceClient
	workflow  *utils.ServiceClient
}

func NewComposerService(projects, tasks, analytics, workflow *utils.ServiceClient) *ComposerService {
	return &ComposerService{projects: projects, tasks: tasks, analytics: analytics, workflow: workflow}
}

// Overview builds the dashboard stat cards. A source that fails is reported in
// Warnings and its cards fall back to zero.
func (s *ComposerService) Overview(ctx context.Context, headers http.Header, asOf string) models.Overview {
	var (
		wg          sync.WaitGroup
		projects    []models.RemoteProject
		stats       models.RemoteTaskStats
		team        models.RemoteTeam
		projectsErr error
		statsErr    error
		teamErr     error
	)

	statsPath := "/api/tasks/stats"
	if asOf != "" {
		statsPath += "?asOf=" + url.QueryEscape(asOf)
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		projectsErr = s.projects.GetJSON(ctx, "/api/projects", headers, &projects)
	}()
	go func() {
		defer wg.Done()
		statsErr = s.tasks.GetJSON(ctx, statsPath, headers, &stats)
	}()
	go func() {
		defer wg.Done()
		teamErr = s.analytics.GetJSON(ctx, "/api/analytics/team", headers, &team)
	}()
	wg.Wait()

	overview := models.Overview{Warnings: []string{}, RecentProjects: []models.RecentProject{}}

	if projectsErr != nil {
		overview.Warnings = append(overview.Warnings, warn("projects", projectsErr))
		projects = nil
	}
	if statsErr != nil {
		overview.Warnings = append(overview.Warnings, warn("tasks", statsErr))
		stats = models.RemoteTaskStats{}
	}
	if teamErr != nil {
		overview.Warnings = append(overview.Warnings, warn("analytics", teamErr))
		team = models.RemoteTeam{}
	}

	active := 0
	for _, p := range projects {
		if p.Status != "Completed" {
			active++
		}
	}

	overview.Stats = []models.StatCard{
		{Title: "Active Projects", Value: strconv.Itoa(active), Change: fmt.Sprintf("of %d projects", len(projects))},
		{Title: "Completed Tasks", Value: strconv.Itoa(stats.ByStatus["completed"]), Change: fmt.Sprintf("of %d tasks", stats.Total)},
		{Title: "Team Members", Value: strconv.Itoa(team.Totals.Members), Change: fmt.Sprintf("%d active", team.Totals.ByStatus["active"])},
		{Title: "Overdue Tasks", Value: strconv.Itoa(stats.Overdue), Change: overdueChange(stats.AsOf)},
	}
	overview.RecentProjects = RecentProjects(projects, recentProjectLimit)
	return overview
}

func warn(source string, err error) string {
	logging.Logger.Warnf("Event ID: COMPOSE_SOURCE_FAILED, Description: %s unavailable: %v", source, err)
	return fmt.Sprintf("%s unavailable", source)
}

func overdueChange(asOf string) string {
	if asOf == "" {
		return "no data"
	}
	return "as of " + asOf
}

// RecentProjects returns the limit projects with the latest start date.
func RecentProjects(projects []models.RemoteProject, limit int) []models.RecentProject {
	sorted := append([]models.RemoteProject(nil), projects...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartDate > sorted[j].StartDate })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]models.RecentProject, 0, len(sorted))
	for _, p := range sorted {
		recent = append(recent, models.RecentProject{
			ID:       p.ID,
			Name:     p.Name,
			Status:   p.Status,
			Progress: p.Progress,
			DueDate:  p.EndDate,
			Team:     p.TeamMembers,
		})
	}
	return recent
}

// Graph joins the tasks of a project with the workflow edges between them.
func (s *ComposerService) Graph(ctx context.Context, project string, headers http.Header) (models.GraphResponse, error) {
	var tasks []models.RemoteTask
	if err := s.tasks.GetJSON(ctx, "/api/tasks?project="+url.QueryEscape(project), headers, &tasks); err != nil {
		return models.GraphResponse{}, fmt.Errorf("tasks-service: %w", err)
	}

	// tasks-service matches a slug or a wildcard, workflow-service only the exact name
	blocked := map[string]bool{}
	type edge struct{ from, to string }
	var deps []edge
	for _, name := range projectNames(tasks, project) {
		var workflow models.RemoteWorkflowGraph
		if err := s.workflow.GetJSON(ctx, "/api/workflow/graph/"+url.PathEscape(name), headers, &workflow); err != nil {
			return models.GraphResponse{}, fmt.Errorf("workflow-service: %w", err)
		}
		for _, n := range workflow.Nodes {
			blocked[n.ID] = n.Blocked
		}
		for _, d := range workflow.Dependencies {
			deps = append(deps, edge{d.FromTaskID, d.ToTaskID})
		}
	}

	graph := models.GraphResponse{Project: project, Nodes: []models.GraphNode{}, Edges: []models.GraphEdge{}}
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
		graph.Nodes = append(graph.Nodes, models.GraphNode{ID: t.ID, Title: t.Title, Status: t.Status, Blocked: blocked[t.ID]})
	}
	for _, e := range deps {
		if known[e.from] && known[e.to] {
			graph.Edges = append(graph.Edges, models.GraphEdge{From: e.from, To: e.to})
		}
	}
	return graph, nil
}

// projectNames returns the distinct project names carried by tasks, or the key itself
// when no task names one.
func projectNames(tasks []models.RemoteTask, key string) []string {
	seen := map[string]bool{}
	var names []string
	for _, t := range tasks {
		if t.Project != "" && !seen[t.Project] {
			seen[t.Project] = true
			names = append(names, t.Project)
		}
	}
	if len(names) == 0 {
		return []string{key}
	}
	sort.Strings(names)
	return names
}
