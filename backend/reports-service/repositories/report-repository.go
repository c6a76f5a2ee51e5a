package repositories

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"projectflow/backend/reports-service/models"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetRecent(ctx context.Context, limit int) ([]models.Report, error)
}

// MemoryReportRepository keeps the log newest first.
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports []models.Report
	nextID  int
}

func NewMemoryReportRepository(seed []models.Report) *MemoryReportRepository {
	repo := &MemoryReportRepository{reports: append([]models.Report(nil), seed...)}
	for _, r := range seed {
		if n, err := strconv.Atoi(r.ID); err == nil && n > repo.nextID {
			repo.nextID = n
		}
	}
	repo.sort()
	return repo
}

func (r *MemoryReportRepository) sort() {
	sort.SliceStable(r.reports, func(i, j int) bool {
		return r.reports[i].GeneratedAt.After(r.reports[j].GeneratedAt)
	})
}

func (r *MemoryReportRepository) Create(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if report.ID == "" {
		r.nextID++
		report.ID = strconv.Itoa(r.nextID)
	}
	r.reports = append(r.reports, *report)
	r.sort()
	return nil
}

// GetRecent returns up to limit reports. A limit of zero or less returns all of them.
func (r *MemoryReportRepository) GetRecent(_ context.Context, limit int) ([]models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.reports)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.Report(nil), r.reports[:n]...), nil
}
