package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/tasks-service/handlers"
	"projectflow/backend/tasks-service/repositories"
	"projectflow/backend/tasks-service/services"
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
	logging.InitLogger("tasks-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Tasks Service...")

	repo := newTaskRepository()

	var workflow *utils.ServiceClient
	if url := utils.GetEnv("WORKFLOW_SERVICE_URL", "http://workflow-service:8005"); url != "" {
		workflow = utils.NewServiceClient("WorkflowServiceCB", url, utils.NewHTTPClient())
	}

	taskService := services.NewTaskService(repo, workflow, utils.GetDurationEnv("SIMULATED_DELAY", time.Second))
	taskHandler := handlers.NewTaskHandler(taskService)

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("tasks-service"))
	utils.RegisterOps(r, "tasks-service")

	r.HandleFunc("/api/tasks", taskHandler.GetTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/kanban", taskHandler.GetKanban).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/stats", taskHandler.GetStats).Methods(http.MethodGet)
	r.HandleFunc("/api/tasks/{taskId}", taskHandler.GetTask).Methods(http.MethodGet)

	serverAddress := utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8002"))
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

// newTaskRepository connects to MongoDB when MONGO_URI is set and falls back to the mock data otherwise.
func newTaskRepository() repositories.TaskRepository {
	mongoURI := utils.GetEnv("MONGO_URI", "")
	if mongoURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: MONGO_URI not set, serving in-memory tasks")
		return repositories.NewMemoryTaskRepository(repositories.SeedTasks())
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

	collection := client.Database(utils.GetEnv("MONGO_DB_NAME", "tasks_db")).Collection(utils.GetEnv("MONGO_COLLECTION", "tasks"))
	repo := repositories.NewMongoTaskRepository(collection)
	if err := repo.SeedIfEmpty(ctx, repositories.SeedTasks()); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SEED_FAILED, Description: %v", err)
	}
	return repo
}
