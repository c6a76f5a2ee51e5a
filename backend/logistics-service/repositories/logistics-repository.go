package repositories

import (
	"context"
	"sync"

	"projectflow/backend/logistics-service/models"
)

type LogisticsRepository interface {
	GetRoutes(ctx context.Context) ([]models.Route, error)
	GetResources(ctx context.Context) ([]models.Resource, error)
}

type MemoryLogisticsRepository struct {
	mu        sync.RWMutex
	routes    []models.Route
	resources []models.Resource
}

func NewMemoryLogisticsRepository(routes []models.Route, resources []models.Resource) *MemoryLogisticsRepository {
	return &MemoryLogisticsRepository{routes: routes, resources: resources}
}

func (r *MemoryLogisticsRepository) GetRoutes(_ context.Context) ([]models.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Route(nil), r.routes...), nil
}

func (r *MemoryLogisticsRepository) GetResources(_ context.Context) ([]models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Resource(nil), r.resources...), nil
}
