package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"projectflow/api-gateway/utils"
	"projectflow/backend/logging"
	backendutils "projectflow/backend/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// route sends every path under prefix to one backend.
type route struct {
	prefix string
	target string
	public bool
}

func routes() []route {
	return []route{
		{prefix: "/api/auth", target: backendutils.GetEnv("USERS_SERVICE_URL", "http://users-service:8001"), public: true},
		{prefix: "/api/tasks", target: backendutils.GetEnv("TASKS_SERVICE_URL", "http://tasks-service:8002")},
		{prefix: "/api/projects", target: backendutils.GetEnv("PROJECTS_SERVICE_URL", "http://projects-service:8003")},
		{prefix: "/api/reports", target: backendutils.GetEnv("REPORTS_SERVICE_URL", "http://reports-service:8004")},
		{prefix: "/api/workflow", target: backendutils.GetEnv("WORKFLOW_SERVICE_URL", "http://workflow-service:8005")},
		{prefix: "/api/analytics", target: backendutils.GetEnv("ANALYTICS_SERVICE_URL", "http://analytics-service:8006")},
		{prefix: "/api/logistics", target: backendutils.GetEnv("LOGISTICS_SERVICE_URL", "http://logistics-service:8007")},
		{prefix: "/api/dashboard", target: backendutils.GetEnv("COMPOSER_SERVICE_URL", "http://api-composer-service:8008")},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_SKIPPED, Description: No .env file loaded: %v", err)
	}
	logging.InitLogger("api-gateway", backendutils.GetEnv("LOG_FILE", ""))
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting API Gateway...")

	validator := utils.NewTokenValidator(backendutils.GetEnv("JWT_SECRET", "projectflow-dev-secret"))
	router, err := newRouter(routes(), validator)
	if err != nil {
		logging.Logger.Fatalf("Event ID: GATEWAY_ROUTE_INVALID, Description: %v", err)
	}

	serverAddress := backendutils.ListenAddress(backendutils.GetEnv("SERVER_PORT", "8000"))
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: API Gateway running on http://localhost%s", serverAddress)
	if err := http.ListenAndServe(serverAddress, backendutils.EnableCORS(backendutils.GetEnv("CORS_ORIGIN", "*"), router)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}

func newRouter(table []route, validator *utils.TokenValidator) (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(backendutils.MetricsMiddleware("api-gateway"))
	backendutils.RegisterOps(r, "api-gateway")

	for _, rt := range table {
		proxy, err := reverseProxyURL(rt.target)
		if err != nil {
			return nil, err
		}
		var handler http.Handler
		if rt.public {
			handler = publicMiddleware(proxy)
		} else {
			handler = authMiddleware(proxy, validator)
		}
		// segment boundary only, so /api/authz never reaches the auth backend
		r.Path(rt.prefix).Handler(handler)
		r.PathPrefix(rt.prefix + "/").Handler(handler)
	}
	return r, nil
}

func reverseProxyURL(target string) (http.Handler, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	proxy := httputil.NewSingleHostReverseProxy(u)

	proxy.ModifyResponse = func(response *http.Response) error {
		// the gateway answers CORS itself
		response.Header.Del("Access-Control-Allow-Origin")
		response.Header.Del("Access-Control-Allow-Methods")
		response.Header.Del("Access-Control-Allow-Headers")
		return nil
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logging.Logger.Errorf("Event ID: GATEWAY_PROXY_ERROR, Description: %s %s -> %s failed: %v", r.Method, r.URL.Path, u.Host, err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
	}
	return proxy, nil
}
