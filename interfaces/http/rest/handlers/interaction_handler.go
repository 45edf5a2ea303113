package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"feelingmachine-backend/pkg/common"
)

// InteractionHandler serves the main interaction endpoint
type InteractionHandler struct {
	logger *zap.Logger
}

// NewInteractionHandler creates a new interaction handler
func NewInteractionHandler(logger *zap.Logger) *InteractionHandler {
	return &InteractionHandler{logger: logger}
}

// Interact handles POST /interact, the full consciousness pipeline:
// analyze the user's emotional state, retrieve emotionally similar past
// moments, build a consciousness-aware prompt, encode the felt experience
// and evolve the consciousness state.
//
// Phase 1 placeholder: the request body is accepted but never parsed.
func (h *InteractionHandler) Interact(w http.ResponseWriter, r *http.Request) {
	common.RespondNotImplemented(w)
}
