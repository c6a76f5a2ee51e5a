package main

import (
	"context"
	"net/http"
	"time"

	"projectflow/backend/logging"
	"projectflow/backend/users-service/handlers"
	"projectflow/backend/users-service/middleware"
	"projectflow/backend/users-service/repositories"
	"projectflow/backend/users-service/services"
	"projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("users-service", utils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting Users Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwtService := services.NewJWTService(utils.GetEnv("JWT_SECRET", "projectflow-dev-secret"), utils.GetDurationEnv("JWT_TTL", 2*time.Hour))
	userService := services.NewUserService(
		newUserRepository(ctx),
		newSessionStore(ctx),
		jwtService,
		utils.GetDurationEnv("SIMULATED_DELAY", time.Second),
		utils.GetDurationEnv("SESSION_TTL", 24*time.Hour),
	)
	userHandler := handlers.NewUserHandler(userService)

	r := mux.NewRouter()
	r.Use(utils.MetricsMiddleware("users-service"))
	utils.RegisterOps(r, "users-service")

	r.HandleFunc("/api/auth/login", userHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", userHandler.Register).Methods(http.MethodPost)
	r.Handle("/api/auth/session", middleware.BearerTokenMiddleware(http.HandlerFunc(userHandler.GetSession))).Methods(http.MethodGet)
	r.Handle("/api/auth/logout", middleware.BearerTokenMiddleware(http.HandlerFunc(userHandler.Logout))).Methods(http.MethodPost)

	srv := &http.Server{
		Addr:         utils.ListenAddress(utils.GetEnv("SERVER_PORT", "8001")),
		Handler:      utils.EnableCORS(utils.GetEnv("CORS_ORIGIN", "*"), r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newUserRepository(ctx context.Context) repositories.UserRepository {
	mongoURI := utils.GetEnv("MONGO_URI", "")
	if mongoURI == "" {
		logging.Logger.Info("Event ID: STORE_IN_MEMORY, Description: MONGO_URI not set, keeping registered users in memory")
		return repositories.NewMemoryUserRepository()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	collection := client.Database(utils.GetEnv("MONGO_DB_NAME", "users")).Collection("users")
	repo, err := repositories.NewMongoUserRepository(ctx, collection)
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_INDEX_FAILED, Description: %v", err)
	}
	return repo
}

func newSessionStore(ctx context.Context) repositories.SessionStore {
	addr := utils.GetEnv("REDIS_ADDR", "")
	if addr == "" {
		logging.Logger.Info("Event ID: SESSIONS_IN_MEMORY, Description: REDIS_ADDR not set, keeping sessions in memory")
		return repositories.NewMemorySessionStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Fatalf("Event ID: REDIS_PING_FAILED, Description: Redis connection error: %v", err)
	}
	logging.Logger.Infof("Event ID: REDIS_CONNECTED, Description: Connected to Redis at %s", addr)
	return repositories.NewRedisSessionStore(client)
}
