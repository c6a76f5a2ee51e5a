package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"projectflow/backend/analytics-service/models"
	"projectflow/backend/analytics-service/repositories"
	"projectflow/backend/logging"
	"projectflow/backend/utils"
)

var (
	WindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	WindowEnd   = time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
)

const day = 24 * time.Hour

// Position maps a date range onto the window as percentages. Ranges outside the
// window give negative offsets or offsets past 100.
func Position(start, end time.Time) (left, width float64) {
	total := WindowEnd.Sub(WindowStart).Hours() / 24
	offset := start.Sub(WindowStart).Hours() / 24
	duration := end.Sub(start).Hours() / 24
	return offset / total * 100, duration / total * 100
}

// Clamp trims a bar to the visible [0,100] range.
func Clamp(left, width float64) (float64, float64) {
	l := math.Min(math.Max(left, 0), 100)
	r := math.Min(math.Max(left+width, 0), 100)
	return l, math.Max(r-l, 0)
}

// WindowDates lists every day of the window, both ends included.
func WindowDates() []string {
	dates := []string{}
	for d := WindowStart; !d.After(WindowEnd); d = d.Add(day) {
		dates = append(dates, d.Format(models.DateLayout))
	}
	return dates
}

type ganttKey struct {
	project string
	clamp   bool
}

// GanttService builds charts and remembers the last one it built.
type GanttService struct {
	repo repositories.TimelineRepository

	mu      sync.Mutex
	lastKey *ganttKey
	last    models.GanttChart
}

func NewGanttService(repo repositories.TimelineRepository) *GanttService {
	return &GanttService{repo: repo}
}

// Chart returns the bars for "all" or one project id. Only the most recent
// selection is memoized.
func (s *GanttService) Chart(ctx context.Context, project string, clamp bool) (models.GanttChart, error) {
	if project == "" {
		project = utils.FilterAll
	}
	key := ganttKey{project: project, clamp: clamp}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastKey != nil && *s.lastKey == key {
		return s.last, nil
	}

	chart, err := s.build(ctx, key)
	if err != nil {
		return models.GanttChart{}, err
	}
	s.lastKey = &key
	s.last = chart
	return chart, nil
}

func (s *GanttService) build(ctx context.Context, key ganttKey) (models.GanttChart, error) {
	tasks, err := s.repo.GetTasks(ctx)
	if err != nil {
		return models.GanttChart{}, fmt.Errorf("failed to load timeline tasks: %w", err)
	}
	selected := utils.Filter(tasks, func(t models.TimelineTask) bool {
		return utils.MatchesOption(key.project, t.ProjectID)
	})

	chart := models.GanttChart{
		Project:     key.project,
		WindowStart: WindowStart.Format(models.DateLayout),
		WindowEnd:   WindowEnd.Format(models.DateLayout),
		Clamped:     key.clamp,
		Dates:       WindowDates(),
		Bars:        make([]models.GanttBar, 0, len(selected)),
	}
	for _, t := range selected {
		start, end, err := t.Dates()
		if err != nil {
			logging.Logger.Warnf("Event ID: GANTT_BAD_DATES, Description: Skipping task %s: %v", t.ID, err)
			continue
		}
		left, width := Position(start, end)
		if key.clamp {
			left, width = Clamp(left, width)
		}
		chart.Bars = append(chart.Bars, models.GanttBar{Task: t, Left: left, Width: width})
	}
	return chart, nil
}
