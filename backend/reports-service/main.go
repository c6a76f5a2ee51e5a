package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/reports-service/handlers"
	"projectflow/backend/reports-service/repositories"
	"projectflow/backend/reports-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("reports-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Reports Service...")

	repo, closeRepo := newReportRepository()
	defer closeRepo()

	service := services.NewReportService(repo, utils.GetDurationEnv("SIMULATED_DELAY", 3*time.Second))
	handler := handlers.NewReportHandler(service)

	router := mux.NewRouter()
	router.Use(utils.MetricsMiddleware("reports-service"))
	utils.RegisterOps(router, "reports-service")

	router.HandleFunc("/api/reports/templates", handler.GetTemplates).Methods(http.MethodGet)
	router.HandleFunc("/api/reports/options", handler.GetOptions).Methods(http.MethodGet)
	router.HandleFunc("/api/reports/recent", handler.GetRecent).Methods(http.MethodGet)
	router.HandleFunc("/api/reports/generate", handler.Generate).Methods(http.MethodPost)

	serverAddress := utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8004"))
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), router)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

// newReportRepository uses Cassandra when CASS_DB is set and the in-memory log otherwise.
func newReportRepository() (repositories.ReportRepository, func()) {
	host := utils.GetEnv("CASS_DB", "")
	if host == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: CASS_DB not set, keeping the report log in memory")
		return repositories.NewMemoryReportRepository(repositories.SeedReports()), func() {}
	}

	repo, err := repositories.NewCassandraReportRepository(host, utils.GetEnv("CASS_KEYSPACE", "reports"))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Failed to initialize repository: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repo.CreateTable(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SCHEMA_FAILED, Description: %v", err)
	}
	if err := repo.SeedIfEmpty(ctx, repositories.SeedReports()); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SEED_FAILED, Description: %v", err)
	}
	return repo, repo.CloseSession
}
