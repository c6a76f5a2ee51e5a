package repositories

import "projectflow/backend/logistics-service/models"

func SeedRoutes() []models.Route {
	return []models.Route{
		{ID: 1, Name: "Downtown Delivery Route", Status: models.RouteActive, Driver: "Carlos Rodriguez", Stops: 8, Distance: "45.2 km", EstimatedTime: "3h 20m", Progress: 62},
		{ID: 2, Name: "Industrial Zone Route", Status: models.RoutePlanned, Driver: "Maria Santos", Stops: 12, Distance: "67.8 km", EstimatedTime: "4h 45m", Progress: 0},
		{ID: 3, Name: "Residential Area Route", Status: models.RouteCompleted, Driver: "Juan Perez", Stops: 15, Distance: "52.3 km", EstimatedTime: "4h 10m", Progress: 100},
	}
}

func SeedResources() []models.Resource {
	return []models.Resource{
		{ID: 1, Name: "Truck #001", Type: "Heavy Duty", Location: "Warehouse A", Status: models.ResourceAvailable, Capacity: "5000 kg"},
		{ID: 2, Name: "Van #003", Type: "Light Delivery", Location: "En Route", Status: models.ResourceBusy, Capacity: "1500 kg"},
		{ID: 3, Name: "Truck #005", Type: "Medium", Location: "Maintenance", Status: models.ResourceMaintenance, Capacity: "3000 kg"},
	}
}

// DefaultLocations are the delivery stops the optimizer form starts with.
func DefaultLocations() []string {
	return []string{
		"123 Main St, Downtown",
		"456 Oak Ave, Midtown",
		"789 Pine Rd, Uptown",
		"321 Elm St, Westside",
		"654 Maple Dr, Eastside",
	}
}
