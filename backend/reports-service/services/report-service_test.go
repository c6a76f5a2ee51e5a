package services

import (
	"context"
	"testing"
	"time"

	"projectflow/backend/reports-service/models"
	"projectflow/backend/reports-service/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(delay time.Duration) *ReportService {
	svc := NewReportService(repositories.NewMemoryReportRepository(repositories.SeedReports()), delay)
	svc.now = func() time.Time { return time.Date(2024, time.January, 12, 9, 30, 0, 0, time.UTC) }
	return svc
}

func TestRecentIsNewestFirst(t *testing.T) {
	reports, err := newService(0).Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "Q4 Project Summary", reports[0].Name)
	assert.Equal(t, "Weekly Time Analysis", reports[2].Name)

	limited, err := newService(0).Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGenerateAppendsCompletedReport(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	report, err := svc.Generate(ctx, models.GenerateReportRequest{
		Template: "team-performance",
		Name:     "January Team Review",
		From:     "2024-01-01",
		To:       "2024-01-31",
		Teams:    []string{"Frontend", "QA"},
		Format:   "EXCEL",
	})
	require.NoError(t, err)
	assert.Equal(t, "4", report.ID)
	assert.Equal(t, models.ReportCompleted, report.Status)
	assert.Equal(t, "Team Performance Report", report.Type)
	assert.Equal(t, "excel", report.Format)
	assert.Equal(t, "2024-01-12", report.GeneratedDate)
	assert.Equal(t, []string{}, report.Projects)

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Equal(t, "January Team Review", recent[0].Name)
}

func TestGenerateDefaults(t *testing.T) {
	report, err := newService(0).Generate(context.Background(), models.GenerateReportRequest{Template: "budget-analysis"})
	require.NoError(t, err)
	assert.Equal(t, "pdf", report.Format)
	assert.Equal(t, "Budget Analysis Report 2024-01-12", report.Name)
}

func TestGenerateValidation(t *testing.T) {
	svc := newService(0)

	cases := []struct {
		name string
		req  models.GenerateReportRequest
		want error
	}{
		{"unknown template", models.GenerateReportRequest{Template: "sales"}, ErrUnknownTemplate},
		{"missing template", models.GenerateReportRequest{}, ErrUnknownTemplate},
		{"format", models.GenerateReportRequest{Template: "time-tracking", Format: "docx"}, ErrInvalidFormat},
		{"bad date", models.GenerateReportRequest{Template: "time-tracking", From: "01/02/2024"}, ErrInvalidDate},
		{"reversed range", models.GenerateReportRequest{Template: "time-tracking", From: "2024-02-01", To: "2024-01-01"}, ErrInvalidRange},
		{"project", models.GenerateReportRequest{Template: "time-tracking", Projects: []string{"Moonshot"}}, ErrUnknownProject},
		{"team", models.GenerateReportRequest{Template: "time-tracking", Teams: []string{"Legal"}}, ErrUnknownTeam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	recent, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestGenerateSameDayRangeIsValid(t *testing.T) {
	_, err := newService(0).Generate(context.Background(), models.GenerateReportRequest{Template: "time-tracking", From: "2024-01-05", To: "2024-01-05"})
	assert.NoError(t, err)
}

func TestGenerateCancelledLeavesLogUntouched(t *testing.T) {
	svc := newService(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Generate(ctx, models.GenerateReportRequest{Template: "project-summary"})
	assert.ErrorIs(t, err, context.Canceled)

	recent, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}
