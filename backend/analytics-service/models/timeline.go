package models

import "time"

const DateLayout = "2006-01-02"

type TimelineStatus string

const (
	TimelineCompleted  TimelineStatus = "completed"
	TimelineInProgress TimelineStatus = "in-progress"
	TimelinePending    TimelineStatus = "pending"
)

// TimelineTask is a task as drawn on the Gantt chart. Dates are YYYY-MM-DD.
type TimelineTask struct {
	ID           string         `json:"id" bson:"_id"`
	Name         string         `json:"name" bson:"name"`
	Project      string         `json:"project" bson:"project"`
	ProjectID    string         `json:"projectId" bson:"projectId"`
	StartDate    string         `json:"startDate" bson:"startDate"`
	EndDate      string         `json:"endDate" bson:"endDate"`
	Progress     int            `json:"progress" bson:"progress"`
	Dependencies []string       `json:"dependencies" bson:"dependencies"`
	Assignee     string         `json:"assignee" bson:"assignee"`
	Priority     string         `json:"priority" bson:"priority"`
	Status       TimelineStatus `json:"status" bson:"status"`
}

func (t TimelineTask) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, t.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(DateLayout, t.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type TimelineProject struct {
	ID        string `json:"id" bson:"_id"`
	Name      string `json:"name" bson:"name"`
	StartDate string `json:"startDate" bson:"startDate"`
	EndDate   string `json:"endDate" bson:"endDate"`
	Progress  int    `json:"progress" bson:"progress"`
	Status    string `json:"status" bson:"status"`
}

// GanttBar places a task inside the chart. Left and Width are percentages of the window.
type GanttBar struct {
	Task  TimelineTask `json:"task"`
	Left  float64      `json:"left"`
	Width float64      `json:"width"`
}

type GanttChart struct {
	Project     string     `json:"project"`
	WindowStart string     `json:"windowStart"`
	WindowEnd   string     `json:"windowEnd"`
	Clamped     bool       `json:"clamped"`
	Dates       []string   `json:"dates"`
	Bars        []GanttBar `json:"bars"`
}

type CriticalPathTask struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Duration  int    `json:"duration"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	Risk      string `json:"risk"`
}

type Risk struct {
	Task       string `json:"task"`
	Issue      string `json:"issue"`
	Impact     string `json:"impact"`
	Mitigation string `json:"mitigation"`
}

type CriticalPath struct {
	ProjectName   string             `json:"projectName"`
	TotalDuration int                `json:"totalDuration"`
	CriticalPath  []CriticalPathTask `json:"criticalPath"`
	Risks         []Risk             `json:"risks"`
}
