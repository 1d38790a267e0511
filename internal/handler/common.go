// internal/handler/common.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bridgeops/partnerflow/internal/middleware"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/serializer"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithCompany renders a company through its registered serializer so
// derived fields are included.
func respondWithCompany(w http.ResponseWriter, code int, company *model.Company) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := serializer.Encode(company, w); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// currentUserID pulls the authenticated user ID out of the request context.
// A missing ID means the auth middleware did not run; treat as unauthorized.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
