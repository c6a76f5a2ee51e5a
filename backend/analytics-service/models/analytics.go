package models

// TeamMember is one row of the team productivity table.
type TeamMember struct {
	ID             string  `json:"id" bson:"_id"`
	Name           string  `json:"name" bson:"name"`
	Role           string  `json:"role" bson:"role"`
	Avatar         string  `json:"avatar" bson:"avatar"`
	TasksCompleted int     `json:"tasksCompleted" bson:"tasksCompleted"`
	TasksAssigned  int     `json:"tasksAssigned" bson:"tasksAssigned"`
	Efficiency     float64 `json:"efficiency" bson:"efficiency"`
	HoursLogged    int     `json:"hoursLogged" bson:"hoursLogged"`
	Status         string  `json:"status" bson:"status"`
	CurrentProject string  `json:"currentProject" bson:"currentProject"`
}

type WeeklyProductivity struct {
	Week  string `json:"week"`
	Tasks int    `json:"tasks"`
	Hours int    `json:"hours"`
}

type TopPerformer struct {
	Name   string `json:"name"`
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// TeamTotals is derived from the member list on every request.
type TeamTotals struct {
	Members           int            `json:"members"`
	ByStatus          map[string]int `json:"byStatus"`
	TasksCompleted    int            `json:"tasksCompleted"`
	TasksAssigned     int            `json:"tasksAssigned"`
	AverageEfficiency float64        `json:"averageEfficiency"`
	HoursLogged       int            `json:"hoursLogged"`
}

type TeamAnalytics struct {
	Members            []TeamMember         `json:"members"`
	WeeklyProductivity []WeeklyProductivity `json:"weeklyProductivity"`
	TopPerformers      []TopPerformer       `json:"topPerformers"`
	Totals             TeamTotals           `json:"totals"`
}

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}
