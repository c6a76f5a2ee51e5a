package repositories

import (
	"time"

	"projectflow/backend/reports-service/models"
)

func ReportTemplates() []models.ReportTemplate {
	return []models.ReportTemplate{
		{
			ID:            "project-summary",
			Name:          "Project Summary Report",
			Description:   "Comprehensive overview of project status, progress, and key metrics",
			Category:      "Project Management",
			EstimatedTime: "2-3 minutes",
			Includes:      []string{"Project status", "Task completion", "Team performance", "Budget tracking"},
		},
		{
			ID:            "team-performance",
			Name:          "Team Performance Report",
			Description:   "Individual and team productivity metrics and analysis",
			Category:      "Team Analytics",
			EstimatedTime: "3-4 minutes",
			Includes:      []string{"Individual metrics", "Team efficiency", "Task velocity", "Quality scores"},
		},
		{
			ID:            "time-tracking",
			Name:          "Time Tracking Report",
			Description:   "Detailed time allocation and productivity analysis",
			Category:      "Time Management",
			EstimatedTime: "1-2 minutes",
			Includes:      []string{"Hours logged", "Time distribution", "Productivity trends", "Overtime analysis"},
		},
		{
			ID:            "budget-analysis",
			Name:          "Budget Analysis Report",
			Description:   "Financial overview and budget utilization across projects",
			Category:      "Financial",
			EstimatedTime: "2-3 minutes",
			Includes:      []string{"Budget vs actual", "Cost breakdown", "Resource costs", "ROI analysis"},
		},
	}
}

var (
	ReportProjects = []string{"Website Redesign", "Mobile App Development", "Marketing Campaign", "Infrastructure Upgrade"}
	ReportTeams    = []string{"Frontend", "Backend", "Design", "QA", "DevOps", "Marketing"}
)

func seedReport(id, name, templateID, typ, date, size string) models.Report {
	generatedAt, _ := time.Parse(models.DateLayout, date)
	return models.Report{
		ID:            id,
		Name:          name,
		Type:          typ,
		TemplateID:    templateID,
		Format:        "pdf",
		Projects:      []string{},
		Teams:         []string{},
		GeneratedDate: date,
		GeneratedAt:   generatedAt,
		Status:        models.ReportCompleted,
		Size:          size,
	}
}

// SeedReports is the report log as first shipped, newest first.
func SeedReports() []models.Report {
	return []models.Report{
		seedReport("1", "Q4 Project Summary", "project-summary", "Project Summary Report", "2024-01-08", "2.4 MB"),
		seedReport("2", "December Team Performance", "team-performance", "Team Performance Report", "2024-01-05", "1.8 MB"),
		seedReport("3", "Weekly Time Analysis", "time-tracking", "Time Tracking Report", "2024-01-03", "956 KB"),
	}
}
