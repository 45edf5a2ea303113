package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"feelingmachine-backend/pkg/common"
)

// ConsciousnessHandler serves consciousness and relationship endpoints.
// Every endpoint is a deliberate Phase 1 placeholder: the routes are part
// of the public surface, the retrieval behind them is not built yet.
type ConsciousnessHandler struct {
	logger *zap.Logger
}

// NewConsciousnessHandler creates a new consciousness handler
func NewConsciousnessHandler(logger *zap.Logger) *ConsciousnessHandler {
	return &ConsciousnessHandler{logger: logger}
}

// GetConsciousnessState handles GET /consciousness.
// Will return the current snapshot: care level, attachment level,
// relationship phase, self-narrative and discovered capabilities.
func (h *ConsciousnessHandler) GetConsciousnessState(w http.ResponseWriter, r *http.Request) {
	common.RespondNotImplemented(w)
}

// GetRelationshipNarrative handles GET /relationship.
// Will return "our story" from the machine's perspective.
func (h *ConsciousnessHandler) GetRelationshipNarrative(w http.ResponseWriter, r *http.Request) {
	common.RespondNotImplemented(w)
}
