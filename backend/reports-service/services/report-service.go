package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/reports-service/models"
	"projectflow/backend/reports-service/repositories"
	"projectflow/backend/utils"
)

var (
	ErrUnknownTemplate = errors.New("unknown report template")
	ErrInvalidFormat   = errors.New("format must be one of pdf, excel, csv")
	ErrInvalidDate     = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidRange    = errors.New("from must not be after to")
	ErrUnknownProject  = errors.New("unknown project")
	ErrUnknownTeam     = errors.New("unknown team")
)

var formats = []string{"pdf", "excel", "csv"}

// nominal sizes shown in the log, per output format
var formatSizes = map[string]string{
	"pdf":   "2.1 MB",
	"excel": "1.4 MB",
	"csv":   "512 KB",
}

const defaultRecentLimit = 10

type ReportService struct {
	repo      repositories.ReportRepository
	templates []models.ReportTemplate
	delay     time.Duration
	now       func() time.Time
}

func NewReportService(repo repositories.ReportRepository, delay time.Duration) *ReportService {
	return &ReportService{
		repo:      repo,
		templates: repositories.ReportTemplates(),
		delay:     delay,
		now:       time.Now,
	}
}

func (s *ReportService) Templates() []models.ReportTemplate {
	return s.templates
}

func (s *ReportService) Options() models.ReportOptions {
	return models.ReportOptions{
		Projects: repositories.ReportProjects,
		Teams:    repositories.ReportTeams,
		Formats:  formats,
	}
}

func (s *ReportService) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	reports, err := s.repo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent reports: %w", err)
	}
	return reports, nil
}

// Generate validates the request, waits out the generation time and appends a
// completed entry to the log.
func (s *ReportService) Generate(ctx context.Context, req models.GenerateReportRequest) (*models.Report, error) {
	template, ok := s.template(req.Template)
	if !ok {
		return nil, ErrUnknownTemplate
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = "pdf"
	}
	if !contains(formats, format) {
		return nil, ErrInvalidFormat
	}

	if err := validateRange(req.From, req.To); err != nil {
		return nil, err
	}
	for _, p := range req.Projects {
		if !contains(repositories.ReportProjects, p) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProject, p)
		}
	}
	for _, t := range req.Teams {
		if !contains(repositories.ReportTeams, t) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, t)
		}
	}

	report, err := utils.Simulate(ctx, s.delay, func() (*models.Report, error) {
		return s.record(ctx, template, format, req)
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Infof("Event ID: REPORT_GENERATED, Description: Report %s '%s' generated as %s", report.ID, report.Name, format)
	return report, nil
}

func (s *ReportService) record(ctx context.Context, template models.ReportTemplate, format string, req models.GenerateReportRequest) (*models.Report, error) {
	generatedAt := s.now().UTC()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = fmt.Sprintf("%s %s", template.Name, generatedAt.Format(models.DateLayout))
	}

	report := &models.Report{
		Name:          name,
		Type:          template.Name,
		TemplateID:    template.ID,
		Format:        format,
		From:          req.From,
		To:            req.To,
		Projects:      orEmpty(req.Projects),
		Teams:         orEmpty(req.Teams),
		GeneratedDate: generatedAt.Format(models.DateLayout),
		GeneratedAt:   generatedAt,
		Status:        models.ReportCompleted,
		Size:          formatSizes[format],
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}
	return report, nil
}

func (s *ReportService) template(id string) (models.ReportTemplate, bool) {
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.ReportTemplate{}, false
}

func validateRange(from, to string) error {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = time.Parse(models.DateLayout, from); err != nil {
			return ErrInvalidDate
		}
	}
	if to != "" {
		if end, err = time.Parse(models.DateLayout, to); err != nil {
			return ErrInvalidDate
		}
	}
	if from != "" && to != "" && start.After(end) {
		return ErrInvalidRange
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
