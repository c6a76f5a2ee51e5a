package models

type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusReview     ProjectStatus = "Review"
	StatusCompleted  ProjectStatus = "Completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

type ProjectPriority string

const (
	PriorityLow      ProjectPriority = "Low"
	PriorityMedium   ProjectPriority = "Medium"
	PriorityHigh     ProjectPriority = "High"
	PriorityCritical ProjectPriority = "Critical"
)

func (p ProjectPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Project struct {
	ID          string          `json:"id" bson:"_id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Status      ProjectStatus   `json:"status" bson:"status"`
	Priority    ProjectPriority `json:"priority" bson:"priority"`
	Progress    int             `json:"progress" bson:"progress"`
	StartDate   string          `json:"startDate" bson:"startDate"`
	EndDate     string          `json:"endDate" bson:"endDate"`
	TeamMembers int             `json:"teamMembers" bson:"teamMembers"`
	Budget      float64         `json:"budget" bson:"budget"`
	Manager     string          `json:"manager" bson:"manager"`
}

type ProjectFilter struct {
	Search   string
	Status   string
	Priority string
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TeamMembers int     `json:"teamMembers"`
	Budget      float64 `json:"budget"`
	Manager     string  `json:"manager"`
}
