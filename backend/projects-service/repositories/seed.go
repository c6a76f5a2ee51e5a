package repositories

import "projectflow/backend/projects-service/models"

func SeedProjects() []models.Project {
	return []models.Project{
		{
			ID:          "1",
			Name:        "Website Redesign",
			Description: "Complete overhaul of company website with modern design and improved UX",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			Progress:    75,
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-15",
			TeamMembers: 5,
			Budget:      50000,
			Manager:     "Sarah Johnson",
		},
		{
			ID:          "2",
			Name:        "Mobile App Development",
			Description: "Native iOS and Android app for customer engagement",
			Status:      models.StatusPlanning,
			Priority:    models.PriorityMedium,
			Progress:    25,
			StartDate:   "2024-01-10",
			EndDate:     "2024-02-28",
			TeamMembers: 8,
			Budget:      120000,
			Manager:     "Mike Chen",
		},
		{
			ID:          "3",
			Name:        "Marketing Campaign Q1",
			Description: "Digital marketing campaign for product launch",
			Status:      models.StatusReview,
			Priority:    models.PriorityHigh,
			Progress:    90,
			StartDate:   "2023-12-15",
			EndDate:     "2024-01-10",
			TeamMembers: 3,
			Budget:      25000,
			Manager:     "Emily Davis",
		},
		{
			ID:          "4",
			Name:        "Infrastructure Upgrade",
			Description: "Server migration and performance optimization",
			Status:      models.StatusCompleted,
			Priority:    models.PriorityCritical,
			Progress:    100,
			StartDate:   "2023-11-01",
			EndDate:     "2023-12-20",
			TeamMembers: 4,
			Budget:      75000,
			Manager:     "Alex Rodriguez",
		},
	}
}
