package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"feelingmachine-backend/infrastructure/config"
	"feelingmachine-backend/interfaces/http/rest/handlers"
	"feelingmachine-backend/interfaces/http/rest/middleware"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg          *config.Config
	logger       *zap.Logger
	errorHandler *pkgerrors.ErrorHandler
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	errorHandler *pkgerrors.ErrorHandler,
) *Router {
	return &Router{
		cfg:          cfg,
		logger:       logger,
		errorHandler: errorHandler,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware. The error handler middleware converts any panic
	// into the fixed generic 500 body.
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))

	// CORS is wide open for now; tighten before the stores go live
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	systemHandler := handlers.NewSystemHandler(rt.cfg, rt.logger)
	consciousnessHandler := handlers.NewConsciousnessHandler(rt.logger)
	interactionHandler := handlers.NewInteractionHandler(rt.logger)
	memoryHandler := handlers.NewMemoryHandler(rt.logger)

	router.Get("/", systemHandler.Root)
	router.Get("/health", systemHandler.Health)

	router.Get("/consciousness", consciousnessHandler.GetConsciousnessState)
	router.Post("/interact", interactionHandler.Interact)
	router.Get("/history/formative", memoryHandler.GetFormativeMoments)
	router.Get("/patterns", memoryHandler.GetLearnedPatterns)
	router.Get("/relationship", consciousnessHandler.GetRelationshipNarrative)

	return router
}
