package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"valet-backend/application/services"
	"valet-backend/infrastructure/config"
	"valet-backend/interfaces/http/rest/handlers"
	"valet-backend/interfaces/http/rest/middleware"
	"valet-backend/pkg/throttle"
)

// Router creates and configures the HTTP router.
type Router struct {
	cfg       *config.Config
	memory    *services.MemoryService
	assistant *services.AssistantService
	logger    *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(
	cfg *config.Config,
	memory *services.MemoryService,
	assistant *services.AssistantService,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:       cfg,
		memory:    memory,
		assistant: assistant,
		logger:    logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Get("/", rt.status)

	// Completion endpoints get a request budget so a runaway client cannot
	// hammer the upstream API.
	assistantHandler := handlers.NewAssistantHandler(rt.assistant, rt.logger)
	router.Group(func(r chi.Router) {
		if rt.cfg.ChatRateLimit > 0 {
			limiter := throttle.NewLimiter(rt.cfg.ChatRateLimit, time.Minute/time.Duration(rt.cfg.ChatRateLimit))
			r.Use(middleware.Throttle(limiter))
		}
		r.Post("/chat", assistantHandler.Chat)
		r.Post("/ask", assistantHandler.Ask)
	})

	memoryHandler := handlers.NewMemoryHandler(rt.memory, rt.logger)
	router.Post("/remember", memoryHandler.Remember)
	router.Post("/forget", memoryHandler.Forget)
	router.Get("/memory", memoryHandler.GetMemory)
	router.Get("/memory/stats", memoryHandler.GetStats)

	return router
}

// status handles GET / requests.
func (rt *Router) status(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"At your service, master."}`))
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
