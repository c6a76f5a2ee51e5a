package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/projects-service/handlers"
	"projectflow/backend/projects-service/repositories"
	"projectflow/backend/projects-service/services"
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
	logging.InitLogger("projects-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Projects Service...")

	projectService := services.NewProjectService(newProjectRepository(), utils.GetDurationEnv("SIMULATED_DELAY", time.Second))
	projectHandler := handlers.NewProjectHandler(projectService)

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("projects-service"))
	utils.RegisterOps(r, "projects-service")

	r.HandleFunc("/api/projects", projectHandler.ListProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/projects", projectHandler.CreateProject).Methods(http.MethodPost)
	r.HandleFunc("/api/projects/{id}", projectHandler.GetProject).Methods(http.MethodGet)

	serverAddress := utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8003"))
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)
	if err := http.ListenAndServe(serverAddress, utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newProjectRepository() repositories.ProjectRepository {
	mongoURI := utils.GetEnv("MONGO_URI", "")
	if mongoURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: MONGO_URI not set, serving in-memory projects")
		return repositories.NewMemoryProjectRepository(repositories.SeedProjects())
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

	collection := client.Database(utils.GetEnv("MONGO_DB_NAME", "projects_db")).Collection(utils.GetEnv("MONGO_COLLECTION", "projects"))
	repo := repositories.NewMongoProjectRepository(collection)
	if err := repo.SeedIfEmpty(ctx, repositories.SeedProjects()); err != nil {
		logging.Logger.Fatalf("Event ID: DB_SEED_FAILED, Description: %v", err)
	}
	return repo
}
