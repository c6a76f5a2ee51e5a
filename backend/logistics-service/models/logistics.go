package models

import (
	"strconv"
	"strings"
)

type RouteStatus string

const (
	RouteActive    RouteStatus = "active"
	RoutePlanned   RouteStatus = "planned"
	RouteCompleted RouteStatus = "completed"
)

type Route struct {
	ID            int         `json:"id" bson:"_id"`
	Name          string      `json:"name" bson:"name"`
	Status        RouteStatus `json:"status" bson:"status"`
	Driver        string      `json:"driver" bson:"driver"`
	Stops         int         `json:"stops" bson:"stops"`
	Distance      string      `json:"distance" bson:"distance"`
	EstimatedTime string      `json:"estimatedTime" bson:"estimatedTime"`
	Progress      int         `json:"progress" bson:"progress"`
}

// DistanceKm reads the numeric part of Distance ("45.2 km"). Unparseable values count as 0.
func (r Route) DistanceKm() float64 {
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(r.Distance), "km"))
	km, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return km
}

type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceBusy        ResourceStatus = "busy"
	ResourceMaintenance ResourceStatus = "maintenance"
)

// Resource is a vehicle. Location is free text.
type Resource struct {
	ID       int            `json:"id" bson:"_id"`
	Name     string         `json:"name" bson:"name"`
	Type     string         `json:"type" bson:"type"`
	Location string         `json:"location" bson:"location"`
	Status   ResourceStatus `json:"status" bson:"status"`
	Capacity string         `json:"capacity" bson:"capacity"`
}

type LogisticsFilter struct {
	Search string
	Status string
}

type LogisticsSummary struct {
	ActiveRoutes      int     `json:"activeRoutes"`
	AvailableVehicles int     `json:"availableVehicles"`
	TotalDistanceKm   float64 `json:"totalDistanceKm"`
	TotalStops        int     `json:"totalStops"`
	AvgDeliveryTime   string  `json:"avgDeliveryTime"`
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type OptimizeRequest struct {
	Priority    string     `json:"priority"`
	VehicleType string     `json:"vehicleType"`
	MaxStops    int        `json:"maxStops"`
	TimeWindow  TimeWindow `json:"timeWindow"`
	Locations   []string   `json:"locations"`
}

type OptimizationResult struct {
	OriginalDistance  float64         `json:"originalDistance"`
	OptimizedDistance float64         `json:"optimizedDistance"`
	TimeSaved         string          `json:"timeSaved"`
	FuelSaved         string          `json:"fuelSaved"`
	CostSaved         string          `json:"costSaved"`
	Settings          OptimizeRequest `json:"settings"`
}
