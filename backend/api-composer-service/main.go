package main

import (
	"net/http"
	"time"

	"projectflow/backend/api-composer-service/handlers"
	"projectflow/backend/api-composer-service/services"
	"projectflow/backend/logging"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("api-composer-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting API Composer Service...")

	client := utils.NewHTTPClient()
	service := services.NewComposerService(
		utils.NewServiceClient("ProjectsServiceCB", utils.GetEnv("PROJECTS_SERVICE_URL", "http://projects-service:8003"), client),
		utils.NewServiceClient("TasksServiceCB", utils.GetEnv("TASKS_SERVICE_URL", "http://tasks-service:8002"), client),
		utils.NewServiceClient("AnalyticsServiceCB", utils.GetEnv("ANALYTICS_SERVICE_URL", "http://analytics-service:8006"), client),
		utils.NewServiceClient("WorkflowServiceCB", utils.GetEnv("WORKFLOW_SERVICE_URL", "http://workflow-service:8005"), client),
	)
	handler := handlers.NewComposerHandler(service)

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("api-composer-service"))
	utils.RegisterOps(r, "api-composer-service")

	r.HandleFunc("/api/dashboard/overview", handler.GetOverview).Methods(http.MethodGet)
	r.HandleFunc("/api/dashboard/graph/{projectId}", handler.GetGraph).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8008")),
		Handler:      utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: API Composer Service running on http://localhost%s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed: %v", err)
	}
}
