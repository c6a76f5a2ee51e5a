package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/analytics-service/handlers"
	"projectflow/backend/analytics-service/repositories"
	"projectflow/backend/analytics-service/services"
	"projectflow/backend/logging"
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
	logging.InitLogger("analytics-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Analytics Service...")

	repo := newTimelineRepository()
	handler := handlers.NewAnalyticsHandler(services.NewGanttService(repo), services.NewAnalyticsService(repo))

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("analytics-service"))
	utils.RegisterOps(r, "analytics-service")

	r.HandleFunc("/api/analytics/gantt", handler.GetGantt).Methods(http.MethodGet)
	r.HandleFunc("/api/analytics/projects", handler.GetProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/analytics/critical-path", handler.GetCriticalPath).Methods(http.MethodGet)
	r.HandleFunc("/api/analytics/team", handler.GetTeam).Methods(http.MethodGet)
	r.HandleFunc("/api/analytics/stats", handler.GetStats).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8006")),
		Handler:      utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newTimelineRepository() repositories.TimelineRepository {
	mongoURI := utils.GetEnv("MONGO_URI", "")
	if mongoURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: MONGO_URI not set, serving in-memory timeline")
		return repositories.NewSeededTimelineRepository()
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

	repo := repositories.NewMongoTimelineRepository(client.Database(utils.GetEnv("MONGO_DB_NAME", "analytics_db")))
	if err := repo.SeedIfEmpty(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SEED_FAILED, Description: %v", err)
	}
	return repo
}
