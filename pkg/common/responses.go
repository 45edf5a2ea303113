package common

import (
	"encoding/json"
	"net/http"
)

// NotImplementedResponse is the placeholder body returned by every
// substantive endpoint until the interaction pipeline lands. It is sent
// with HTTP 200 on purpose: the route exists, the behavior does not.
type NotImplementedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewNotImplementedResponse builds the canonical Phase 1 placeholder payload
func NewNotImplementedResponse() NotImplementedResponse {
	return NotImplementedResponse{
		Error:   "Not implemented yet",
		Message: "Phase 1: Infrastructure setup in progress",
	}
}

// RespondJSON writes v as a JSON response body with the given status.
// Payload shapes are part of the public contract, so bodies are written
// as-is without a success/data envelope.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondNotImplemented writes the Phase 1 placeholder with HTTP 200
func RespondNotImplemented(w http.ResponseWriter) {
	RespondJSON(w, http.StatusOK, NewNotImplementedResponse())
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}

// ExtractRequestID extracts the request ID from the request headers
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Request-Id"); id != "" {
		return id
	}
	return ""
}
