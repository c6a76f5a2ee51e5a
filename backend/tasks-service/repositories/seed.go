package repositories

import "projectflow/backend/tasks-service/models"

const placeholderAvatar = "/placeholder.svg?height=32&width=32"

// Directory maps assignee ids to display names.
var Directory = map[string]string{
	"john-doe":      "John Doe",
	"jane-smith":    "Jane Smith",
	"mike-wilson":   "Mike Wilson",
	"lisa-chen":     "Lisa Chen",
	"sarah-johnson": "Sarah Johnson",
}

// ProjectNames maps the project keys the create form sends to project names.
var ProjectNames = map[string]string{
	"website-redesign": "Website Redesign",
	"mobile-app":       "Mobile App Development",
	"marketing":        "Marketing Campaign",
	"infrastructure":   "Infrastructure Upgrade",
}

func assignee(id string) models.Assignee {
	return models.Assignee{ID: id, Name: Directory[id], Avatar: placeholderAvatar}
}

// SeedTasks returns a fresh copy of the mock task board.
func SeedTasks() []models.Task {
	return []models.Task{
		{
			ID:             "1",
			Title:          "Design homepage wireframes",
			Description:    "Create detailed wireframes for the new homepage layout including mobile responsive design",
			Status:         models.StatusInProgress,
			Priority:       models.PriorityHigh,
			Project:        "Website Redesign",
			Assignee:       assignee("john-doe"),
			DueDate:        "2024-01-08",
			CreatedDate:    "2024-01-01",
			Dependencies:   []string{"2"},
			Tags:           []string{"design", "ui/ux"},
			EstimatedHours: 8,
			CompletedHours: 5,
		},
		{
			ID:             "2",
			Title:          "User research analysis",
			Description:    "Analyze user feedback and research data to inform design decisions",
			Status:         models.StatusCompleted,
			Priority:       models.PriorityMedium,
			Project:        "Website Redesign",
			Assignee:       assignee("jane-smith"),
			DueDate:        "2024-01-05",
			CreatedDate:    "2023-12-28",
			Dependencies:   []string{},
			Tags:           []string{"research", "analysis"},
			EstimatedHours: 12,
			CompletedHours: 12,
		},
		{
			ID:             "3",
			Title:          "API endpoint development",
			Description:    "Develop REST API endpoints for user authentication and data management",
			Status:         models.StatusTodo,
			Priority:       models.PriorityCritical,
			Project:        "Mobile App",
			Assignee:       assignee("mike-wilson"),
			DueDate:        "2024-01-12",
			CreatedDate:    "2024-01-02",
			Dependencies:   []string{"4"},
			Tags:           []string{"backend", "api"},
			EstimatedHours: 16,
			CompletedHours: 0,
		},
		{
			ID:             "4",
			Title:          "Database schema design",
			Description:    "Design and implement database schema for the mobile application",
			Status:         models.StatusInProgress,
			Priority:       models.PriorityHigh,
			Project:        "Mobile App",
			Assignee:       assignee("lisa-chen"),
			DueDate:        "2024-01-10",
			CreatedDate:    "2024-01-01",
			Dependencies:   []string{},
			Tags:           []string{"database", "backend"},
			EstimatedHours: 10,
			CompletedHours: 6,
		},
		{
			ID:             "5",
			Title:          "Marketing content creation",
			Description:    "Create engaging content for social media marketing campaign",
			Status:         models.StatusReview,
			Priority:       models.PriorityMedium,
			Project:        "Marketing Campaign",
			Assignee:       assignee("john-doe"),
			DueDate:        "2024-01-09",
			CreatedDate:    "2024-01-03",
			Dependencies:   []string{},
			Tags:           []string{"marketing", "content"},
			EstimatedHours: 6,
			CompletedHours: 6,
		},
		{
			ID:             "6",
			Title:          "Mobile UI components",
			Description:    "Build reusable UI components for mobile app",
			Status:         models.StatusTodo,
			Priority:       models.PriorityMedium,
			Project:        "Mobile App",
			Assignee:       assignee("jane-smith"),
			DueDate:        "2024-01-15",
			Dependencies:   []string{},
			Tags:           []string{},
			EstimatedHours: 14,
			CompletedHours: 0,
		},
	}
}

// StatCards are the headline numbers shown above the task board.
func StatCards() []models.StatCard {
	return []models.StatCard{
		{Title: "Total Tasks", Value: "156", Change: "+12 this week"},
		{Title: "In Progress", Value: "24", Change: "+3 from yesterday"},
		{Title: "Completed Today", Value: "8", Change: "+2 from yesterday"},
		{Title: "Overdue", Value: "5", Change: "-1 from yesterday"},
	}
}
