package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/utils"
	"projectflow/backend/workflow-service/handlers"
	"projectflow/backend/workflow-service/interfaces"
	"projectflow/backend/workflow-service/repositories"
	"projectflow/backend/workflow-service/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("workflow-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Workflow Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, closeStore := newGraphStore(ctx)
	defer closeStore()

	workflowService := services.NewWorkflowService(store)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)

	router := mux.NewRouter()
	router.Use(utils.MetricsMiddleware("workflow-service"))
	utils.RegisterOps(router, "workflow-service")

	router.HandleFunc("/api/workflow/dependency", workflowHandler.AddDependency).Methods(http.MethodPost)
	router.HandleFunc("/api/workflow/dependency", workflowHandler.RemoveDependency).Methods(http.MethodDelete)
	router.HandleFunc("/api/workflow/task-node", workflowHandler.EnsureTaskNode).Methods(http.MethodPost)
	router.HandleFunc("/api/workflow/dependencies/{taskId}", workflowHandler.GetDependencies).Methods(http.MethodGet)
	router.HandleFunc("/api/workflow/graph/{projectId}", workflowHandler.GetWorkflowGraph).Methods(http.MethodGet)

	srv := &http.Server{
		Handler:      utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), router),
		Addr:         utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8005")),
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Workflow service running on port %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newGraphStore(ctx context.Context) (interfaces.GraphStore, func()) {
	neo4jURI := utils.GetEnv("NEO4J_URI", "")
	if neo4jURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: NEO4J_URI not set, using in-memory graph")
		store := repositories.NewMemoryGraphStore()
		if err := repositories.Seed(ctx, store); err != nil {
			logging.Logger.Fatalf("Event ID: GRAPH_SEED_FAILED, Description: %v", err)
		}
		return store, func() {}
	}

	driver, err := neo4j.NewDriverWithContext(neo4jURI, neo4j.BasicAuth(utils.GetEnv("NEO4J_USERNAME", "neo4j"), utils.GetEnv("NEO4J_PASSWORD", ""), ""))
	if err != nil {
		logging.Logger.Fatalf("Event ID: NEO4J_DRIVER_FAILED, Description: Failed to create Neo4j driver: %v", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		logging.Logger.Fatalf("Event ID: NEO4J_CONNECT_FAILED, Description: Neo4j is unreachable: %v", err)
	}
	logging.Logger.Infof("Event ID: NEO4J_CONNECTED, Description: Connected to Neo4j at %s", neo4jURI)

	store := repositories.NewNeo4jGraphStore(driver)
	if err := repositories.Seed(ctx, store); err != nil {
		logging.Logger.Fatalf("Event ID: GRAPH_SEED_FAILED, Description: %v", err)
	}
	return store, func() { driver.Close(context.Background()) }
}
