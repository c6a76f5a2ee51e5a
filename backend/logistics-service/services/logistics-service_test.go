package services

import (
	"context"
	"testing"
	"time"

	"projectflow/backend/logistics-service/models"
	"projectflow/backend/logistics-service/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(delay time.Duration) *LogisticsService {
	return NewLogisticsService(repositories.NewMemoryLogisticsRepository(repositories.SeedRoutes(), repositories.SeedResources()), delay)
}

func TestListRoutesFilters(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	all, err := svc.ListRoutes(ctx, models.LogisticsFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := svc.ListRoutes(ctx, models.LogisticsFilter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Downtown Delivery Route", active[0].Name)

	byDriver, err := svc.ListRoutes(ctx, models.LogisticsFilter{Search: "maria"})
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	assert.Equal(t, 2, byDriver[0].ID)

	none, err := svc.ListRoutes(ctx, models.LogisticsFilter{Search: "maria", Status: "completed"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListResourcesFilters(t *testing.T) {
	svc := newService(0)

	trucks, err := svc.ListResources(context.Background(), models.LogisticsFilter{Search: "TRUCK"})
	require.NoError(t, err)
	assert.Len(t, trucks, 2)

	available, err := svc.ListResources(context.Background(), models.LogisticsFilter{Search: "truck", Status: "available"})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Warehouse A", available[0].Location)
}

func TestSummary(t *testing.T) {
	summary, err := newService(0).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ActiveRoutes)
	assert.Equal(t, 1, summary.AvailableVehicles)
	assert.Equal(t, 8, summary.TotalStops)
	assert.InDelta(t, 45.2, summary.TotalDistanceKm, 1e-9)
}

func TestDistanceKm(t *testing.T) {
	assert.InDelta(t, 67.8, models.Route{Distance: "67.8 km"}.DistanceKm(), 1e-9)
	assert.InDelta(t, 12, models.Route{Distance: "12km"}.DistanceKm(), 1e-9)
	assert.Zero(t, models.Route{Distance: "far"}.DistanceKm())
}

func TestOptimizeDefaults(t *testing.T) {
	result, err := newService(0).Optimize(context.Background(), models.OptimizeRequest{})
	require.NoError(t, err)

	assert.Equal(t, 127.5, result.OriginalDistance)
	assert.Equal(t, 89.2, result.OptimizedDistance)
	assert.Equal(t, "1h 45m", result.TimeSaved)
	assert.Equal(t, "12.3L", result.FuelSaved)
	assert.Equal(t, "$45.60", result.CostSaved)

	assert.Equal(t, "distance", result.Settings.Priority)
	assert.Equal(t, "truck", result.Settings.VehicleType)
	assert.Equal(t, 15, result.Settings.MaxStops)
	assert.Equal(t, models.TimeWindow{Start: "08:00", End: "18:00"}, result.Settings.TimeWindow)
	assert.Len(t, result.Settings.Locations, 5)
}

func TestOptimizeValidation(t *testing.T) {
	svc := newService(0)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.OptimizeRequest
		want error
	}{
		{"priority", models.OptimizeRequest{Priority: "scenic"}, ErrInvalidPriority},
		{"vehicle", models.OptimizeRequest{VehicleType: "bicycle"}, ErrInvalidVehicleType},
		{"negative stops", models.OptimizeRequest{MaxStops: -1}, ErrInvalidMaxStops},
		{"too many locations", models.OptimizeRequest{MaxStops: 2, Locations: []string{"a", "b", "c"}}, ErrTooManyLocations},
		{"bad clock", models.OptimizeRequest{TimeWindow: models.TimeWindow{Start: "8am"}}, ErrInvalidTimeWindow},
		{"reversed window", models.OptimizeRequest{TimeWindow: models.TimeWindow{Start: "18:00", End: "08:00"}}, ErrInvalidTimeWindow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Optimize(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptimizeHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(time.Minute).Optimize(ctx, models.OptimizeRequest{})
	assert.ErrorIs(t, err, context.Canceled)
}
