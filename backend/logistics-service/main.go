package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/logistics-service/handlers"
	"projectflow/backend/logistics-service/repositories"
	"projectflow/backend/logistics-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("logistics-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Logistics Service...")

	service := services.NewLogisticsService(newLogisticsRepository(), utils.GetDurationEnv("SIMULATED_DELAY", 3*time.Second))
	handler := handlers.NewLogisticsHandler(service)

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("logistics-service"))
	utils.RegisterOps(r, "logistics-service")

	r.HandleFunc("/api/logistics/routes", handler.GetRoutes).Methods(http.MethodGet)
	r.HandleFunc("/api/logistics/resources", handler.GetResources).Methods(http.MethodGet)
	r.HandleFunc("/api/logistics/summary", handler.GetSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/logistics/optimize", handler.Optimize).Methods(http.MethodPost)

	serverAddress := utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8007"))
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newLogisticsRepository() repositories.LogisticsRepository {
	mongoURI := utils.GetEnv("MONGO_URI", "")
	if mongoURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: MONGO_URI not set, serving in-memory routes and resources")
		return repositories.NewMemoryLogisticsRepository(repositories.SeedRoutes(), repositories.SeedResources())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	repo := repositories.NewMongoLogisticsRepository(client.Database(utils.GetEnv("MONGO_DB_NAME", "logistics_db")))
	if err := repo.SeedIfEmpty(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SEED_FAILED, Description: %v", err)
	}
	return repo
}
