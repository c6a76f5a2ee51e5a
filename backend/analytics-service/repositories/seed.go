package repositories

import "projectflow/backend/analytics-service/models"

func timelineTask(id, name, project, projectID, start, end string, progress int, deps []string, assignee, priority string, status models.TimelineStatus) models.TimelineTask {
	if deps == nil {
		deps = []string{}
	}
	return models.TimelineTask{
		ID: id, Name: name, Project: project, ProjectID: projectID,
		StartDate: start, EndDate: end, Progress: progress, Dependencies: deps,
		Assignee: assignee, Priority: priority, Status: status,
	}
}

func SeedTimelineTasks() []models.TimelineTask {
	return []models.TimelineTask{
		timelineTask("1", "User Research & Analysis", "Website Redesign", "1", "2024-01-01", "2024-01-03", 100, nil, "John Doe", "high", models.TimelineCompleted),
		timelineTask("2", "Wireframe Creation", "Website Redesign", "1", "2024-01-03", "2024-01-05", 100, []string{"1"}, "John Doe", "high", models.TimelineCompleted),
		timelineTask("3", "Design System Setup", "Website Redesign", "1", "2024-01-05", "2024-01-08", 75, []string{"2"}, "John Doe", "medium", models.TimelineInProgress),
		timelineTask("4", "Homepage Development", "Website Redesign", "1", "2024-01-08", "2024-01-12", 40, []string{"3"}, "Jane Smith", "high", models.TimelineInProgress),
		timelineTask("5", "Backend Integration", "Website Redesign", "1", "2024-01-10", "2024-01-14", 0, []string{"4"}, "Mike Wilson", "critical", models.TimelinePending),
		timelineTask("6", "Testing & QA", "Website Redesign", "1", "2024-01-12", "2024-01-15", 0, []string{"4", "5"}, "Lisa Chen", "high", models.TimelinePending),
		timelineTask("7", "App Architecture", "Mobile App Development", "2", "2024-01-10", "2024-01-15", 60, nil, "Mike Wilson", "critical", models.TimelineInProgress),
		timelineTask("8", "UI Components", "Mobile App Development", "2", "2024-01-15", "2024-01-25", 20, []string{"7"}, "Jane Smith", "high", models.TimelineInProgress),
	}
}

func SeedTimelineProjects() []models.TimelineProject {
	return []models.TimelineProject{
		{ID: "1", Name: "Website Redesign", StartDate: "2024-01-01", EndDate: "2024-01-15", Progress: 75, Status: "In Progress"},
		{ID: "2", Name: "Mobile App Development", StartDate: "2024-01-10", EndDate: "2024-02-28", Progress: 25, Status: "Planning"},
		{ID: "3", Name: "Marketing Campaign", StartDate: "2023-12-15", EndDate: "2024-01-10", Progress: 90, Status: "Review"},
	}
}

// DefaultCriticalPath is served for any project key without its own analysis.
const DefaultCriticalPath = "1"

func CriticalPaths() map[string]models.CriticalPath {
	return map[string]models.CriticalPath{
		"1": {
			ProjectName:   "Website Redesign",
			TotalDuration: 15,
			CriticalPath: []models.CriticalPathTask{
				{ID: "1", Name: "User Research & Analysis", Duration: 3, StartDate: "2024-01-01", EndDate: "2024-01-03", Status: "completed", Risk: "low"},
				{ID: "2", Name: "Wireframe Creation", Duration: 2, StartDate: "2024-01-03", EndDate: "2024-01-05", Status: "completed", Risk: "low"},
				{ID: "3", Name: "Design System Setup", Duration: 3, StartDate: "2024-01-05", EndDate: "2024-01-08", Status: "in-progress", Risk: "medium"},
				{ID: "4", Name: "Homepage Development", Duration: 4, StartDate: "2024-01-08", EndDate: "2024-01-12", Status: "in-progress", Risk: "high"},
				{ID: "6", Name: "Testing & QA", Duration: 3, StartDate: "2024-01-12", EndDate: "2024-01-15", Status: "pending", Risk: "medium"},
			},
			Risks: []models.Risk{
				{Task: "Homepage Development", Issue: "Resource allocation conflict", Impact: "2 days delay", Mitigation: "Assign additional developer"},
				{Task: "Design System Setup", Issue: "Dependency on external library", Impact: "1 day delay", Mitigation: "Prepare fallback solution"},
			},
		},
		"all": {
			ProjectName:   "All Projects",
			TotalDuration: 45,
			CriticalPath: []models.CriticalPathTask{
				{ID: "1", Name: "Website Redesign - Critical Path", Duration: 15, StartDate: "2024-01-01", EndDate: "2024-01-15", Status: "in-progress", Risk: "medium"},
				{ID: "7", Name: "Mobile App - Architecture", Duration: 5, StartDate: "2024-01-10", EndDate: "2024-01-15", Status: "in-progress", Risk: "high"},
			},
			Risks: []models.Risk{
				{Task: "Cross-project Resource Sharing", Issue: "Team members allocated to multiple projects", Impact: "3-5 days delay across projects", Mitigation: "Prioritize critical path tasks"},
			},
		},
	}
}

const avatarPlaceholder = "/placeholder.svg?height=40&width=40"

func SeedTeamMembers() []models.TeamMember {
	return []models.TeamMember{
		{ID: "1", Name: "Sarah Johnson", Role: "Project Manager", Avatar: avatarPlaceholder, TasksCompleted: 28, TasksAssigned: 32, Efficiency: 87.5, HoursLogged: 156, Status: "active", CurrentProject: "Website Redesign"},
		{ID: "2", Name: "John Doe", Role: "UI/UX Designer", Avatar: avatarPlaceholder, TasksCompleted: 24, TasksAssigned: 26, Efficiency: 92.3, HoursLogged: 142, Status: "active", CurrentProject: "Mobile App"},
		{ID: "3", Name: "Jane Smith", Role: "Frontend Developer", Avatar: avatarPlaceholder, TasksCompleted: 31, TasksAssigned: 35, Efficiency: 88.6, HoursLogged: 168, Status: "active", CurrentProject: "Website Redesign"},
		{ID: "4", Name: "Mike Wilson", Role: "Backend Developer", Avatar: avatarPlaceholder, TasksCompleted: 22, TasksAssigned: 28, Efficiency: 78.6, HoursLogged: 134, Status: "busy", CurrentProject: "Mobile App"},
		{ID: "5", Name: "Lisa Chen", Role: "QA Engineer", Avatar: avatarPlaceholder, TasksCompleted: 19, TasksAssigned: 21, Efficiency: 90.5, HoursLogged: 128, Status: "active", CurrentProject: "Marketing Campaign"},
	}
}

func WeeklyProductivity() []models.WeeklyProductivity {
	return []models.WeeklyProductivity{
		{Week: "Week 1", Tasks: 45, Hours: 320},
		{Week: "Week 2", Tasks: 52, Hours: 340},
		{Week: "Week 3", Tasks: 48, Hours: 315},
		{Week: "Week 4", Tasks: 58, Hours: 365},
	}
}

func TopPerformers() []models.TopPerformer {
	return []models.TopPerformer{
		{Name: "John Doe", Metric: "Efficiency", Value: "92.3%", Change: "+2.1%"},
		{Name: "Lisa Chen", Metric: "Quality Score", Value: "9.2/10", Change: "+0.5"},
		{Name: "Jane Smith", Metric: "Task Velocity", Value: "31 tasks", Change: "+4"},
	}
}

func GanttStats() []models.StatCard {
	return []models.StatCard{
		{Title: "Active Projects", Value: "3", Change: "+1 this month"},
		{Title: "Critical Path Tasks", Value: "8", Change: "2 at risk"},
		{Title: "On Schedule", Value: "85%", Change: "+5% from last week"},
		{Title: "Avg. Completion", Value: "63%", Change: "+12% this month"},
	}
}
