package models

type StatCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type RecentProject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	DueDate  string `json:"dueDate"`
	Team     int    `json:"team"`
}

// Overview is the dashboard landing payload. Warnings name the sources that could not be reached.
type Overview struct {
	Stats          []StatCard      `json:"stats"`
	RecentProjects []RecentProject `json:"recentProjects"`
	Warnings       []string        `json:"warnings"`
}

type RemoteProject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	TeamMembers int    `json:"teamMembers"`
}

type RemoteTaskStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	Overdue  int            `json:"overdue"`
	AsOf     string         `json:"asOf"`
}

type RemoteTeam struct {
	Totals struct {
		Members  int            `json:"members"`
		ByStatus map[string]int `json:"byStatus"`
	} `json:"totals"`
}
