package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"feelingmachine-backend/pkg/common"
)

// MemoryHandler serves emotional-memory retrieval endpoints, all Phase 1
// placeholders
type MemoryHandler struct {
	logger *zap.Logger
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{logger: logger}
}

// GetFormativeMoments handles GET /history/formative.
// Will return the experiences that shaped consciousness.
func (h *MemoryHandler) GetFormativeMoments(w http.ResponseWriter, r *http.Request) {
	common.RespondNotImplemented(w)
}

// GetLearnedPatterns handles GET /patterns.
// Will return emergent patterns discovered through experience.
func (h *MemoryHandler) GetLearnedPatterns(w http.ResponseWriter, r *http.Request) {
	common.RespondNotImplemented(w)
}
