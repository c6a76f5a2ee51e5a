package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/logistics-service/models"
	"projectflow/backend/logistics-service/repositories"
	"projectflow/backend/utils"
)

var (
	ErrInvalidPriority    = errors.New("priority must be one of distance, time, fuel, cost")
	ErrInvalidVehicleType = errors.New("vehicleType must be one of truck, van, motorcycle")
	ErrInvalidMaxStops    = errors.New("maxStops must be positive")
	ErrTooManyLocations   = errors.New("more locations than maxStops")
	ErrInvalidTimeWindow  = errors.New("timeWindow must be HH:MM with start before end")
)

const (
	defaultPriority    = "distance"
	defaultVehicleType = "truck"
	defaultMaxStops    = 15
	defaultWindowStart = "08:00"
	defaultWindowEnd   = "18:00"
	clockLayout        = "15:04"

	avgDeliveryTime = "2.5h"
)

var (
	priorities   = []string{"distance", "time", "fuel", "cost"}
	vehicleTypes = []string{"truck", "van", "motorcycle"}
)

type LogisticsService struct {
	repo  repositories.LogisticsRepository
	delay time.Duration
}

func NewLogisticsService(repo repositories.LogisticsRepository, delay time.Duration) *LogisticsService {
	return &LogisticsService{repo: repo, delay: delay}
}

func (s *LogisticsService) ListRoutes(ctx context.Context, filter models.LogisticsFilter) ([]models.Route, error) {
	routes, err := s.repo.GetRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}
	return utils.Filter(routes,
		func(r models.Route) bool { return utils.MatchesSearch(filter.Search, r.Name, r.Driver) },
		func(r models.Route) bool { return utils.MatchesOption(filter.Status, string(r.Status)) },
	), nil
}

func (s *LogisticsService) ListResources(ctx context.Context, filter models.LogisticsFilter) ([]models.Resource, error) {
	resources, err := s.repo.GetResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	return utils.Filter(resources,
		func(r models.Resource) bool { return utils.MatchesSearch(filter.Search, r.Name, r.Type, r.Location) },
		func(r models.Resource) bool { return utils.MatchesOption(filter.Status, string(r.Status)) },
	), nil
}

// Summary counts active routes and available vehicles. Distance and stops cover
// active routes only.
func (s *LogisticsService) Summary(ctx context.Context) (models.LogisticsSummary, error) {
	routes, err := s.repo.GetRoutes(ctx)
	if err != nil {
		return models.LogisticsSummary{}, fmt.Errorf("failed to load routes: %w", err)
	}
	resources, err := s.repo.GetResources(ctx)
	if err != nil {
		return models.LogisticsSummary{}, fmt.Errorf("failed to load resources: %w", err)
	}

	summary := models.LogisticsSummary{AvgDeliveryTime: avgDeliveryTime}
	for _, r := range routes {
		if r.Status != models.RouteActive {
			continue
		}
		summary.ActiveRoutes++
		summary.TotalStops += r.Stops
		summary.TotalDistanceKm += r.DistanceKm()
	}
	summary.TotalDistanceKm = math.Round(summary.TotalDistanceKm*10) / 10
	for _, r := range resources {
		if r.Status == models.ResourceAvailable {
			summary.AvailableVehicles++
		}
	}
	return summary, nil
}

// Optimize fills in defaults, validates the settings and returns the canned
// result after the simulated wait.
func (s *LogisticsService) Optimize(ctx context.Context, req models.OptimizeRequest) (models.OptimizationResult, error) {
	settings, err := normalize(req)
	if err != nil {
		return models.OptimizationResult{}, err
	}

	result, err := utils.Simulate(ctx, s.delay, func() (models.OptimizationResult, error) {
		return models.OptimizationResult{
			OriginalDistance:  127.5,
			OptimizedDistance: 89.2,
			TimeSaved:         "1h 45m",
			FuelSaved:         "12.3L",
			CostSaved:         "$45.60",
			Settings:          settings,
		}, nil
	})
	if err != nil {
		return models.OptimizationResult{}, err
	}
	logging.Logger.Infof("Event ID: ROUTE_OPTIMIZED, Description: Optimized %d locations by %s", len(settings.Locations), settings.Priority)
	return result, nil
}

func normalize(req models.OptimizeRequest) (models.OptimizeRequest, error) {
	out := req
	if out.Priority == "" {
		out.Priority = defaultPriority
	}
	if !contains(priorities, out.Priority) {
		return out, ErrInvalidPriority
	}
	if out.VehicleType == "" {
		out.VehicleType = defaultVehicleType
	}
	if !contains(vehicleTypes, out.VehicleType) {
		return out, ErrInvalidVehicleType
	}
	if out.MaxStops == 0 {
		out.MaxStops = defaultMaxStops
	}
	if out.MaxStops < 0 {
		return out, ErrInvalidMaxStops
	}

	if out.TimeWindow.Start == "" {
		out.TimeWindow.Start = defaultWindowStart
	}
	if out.TimeWindow.End == "" {
		out.TimeWindow.End = defaultWindowEnd
	}
	start, err := time.Parse(clockLayout, out.TimeWindow.Start)
	if err != nil {
		return out, ErrInvalidTimeWindow
	}
	end, err := time.Parse(clockLayout, out.TimeWindow.End)
	if err != nil || !start.Before(end) {
		return out, ErrInvalidTimeWindow
	}

	locations := make([]string, 0, len(out.Locations))
	for _, l := range out.Locations {
		if l = strings.TrimSpace(l); l != "" {
			locations = append(locations, l)
		}
	}
	if len(locations) == 0 {
		locations = repositories.DefaultLocations()
	}
	if len(locations) > out.MaxStops {
		return out, ErrTooManyLocations
	}
	out.Locations = locations
	return out, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
