package models

import "time"

const DateLayout = "2006-01-02"

type ReportTemplate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	EstimatedTime string   `json:"estimatedTime"`
	Includes      []string `json:"includes"`
}

type ReportStatus string

const ReportCompleted ReportStatus = "completed"

// Report is one entry of the report log. No file backs it.
type Report struct {
	ID            string       `cassandra:"id" json:"id"`
	Name          string       `cassandra:"name" json:"name"`
	Type          string       `cassandra:"type" json:"type"`
	TemplateID    string       `cassandra:"template_id" json:"templateId"`
	Format        string       `cassandra:"format" json:"format"`
	From          string       `cassandra:"date_from" json:"from,omitempty"`
	To            string       `cassandra:"date_to" json:"to,omitempty"`
	Projects      []string     `cassandra:"projects" json:"projects"`
	Teams         []string     `cassandra:"teams" json:"teams"`
	GeneratedDate string       `cassandra:"generated_date" json:"generatedDate"`
	GeneratedAt   time.Time    `cassandra:"generated_at" json:"generatedAt"`
	Status        ReportStatus `cassandra:"status" json:"status"`
	Size          string       `cassandra:"size" json:"size"`
}

type GenerateReportRequest struct {
	Template string   `json:"template"`
	Name     string   `json:"name"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Projects []string `json:"projects"`
	Teams    []string `json:"teams"`
	Format   string   `json:"format"`
}

// ReportOptions lists what a report can be scoped to.
type ReportOptions struct {
	Projects []string `json:"projects"`
	Teams    []string `json:"teams"`
	Formats  []string `json:"formats"`
}
