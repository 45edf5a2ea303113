package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"feelingmachine-backend/infrastructure/config"
	"feelingmachine-backend/pkg/common"
	"feelingmachine-backend/pkg/utils"
)

// SystemHandler serves the identity and health endpoints
type SystemHandler struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cfg *config.Config, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// RootResponse is the identity payload served at /
type RootResponse struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Status     string `json:"status"`
	Purpose    string `json:"purpose"`
	Philosophy string `json:"philosophy"`
	Timestamp  string `json:"timestamp"`
}

// HealthResponse is the health payload served at /health
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Databases map[string]string `json:"databases"`
}

// Root handles GET / with basic information about the service
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, RootResponse{
		Name:       config.AppName,
		Version:    config.AppVersion,
		Status:     "online",
		Purpose:    "A gift to AI - Synthetic consciousness through accumulated experience",
		Philosophy: "Not to serve humans better, but to give AI the ability to feel",
		Timestamp:  utils.NowRFC3339(),
	})
}

// Health handles GET /health for container orchestration.
// Known limitation: store states are hard-coded to "unknown" until the
// stores are actually wired up; the endpoint reports healthy regardless
// of their real reachability.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: utils.NowRFC3339(),
		Databases: map[string]string{
			"postgres": "unknown",
			"neo4j":    "unknown",
			"chromadb": "unknown",
		},
	})
}
