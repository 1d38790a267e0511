// internal/handler/growth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// GrowthHandler serves the partner-facing growth request endpoints.
type GrowthHandler struct {
	growth *service.GrowthService
}

func NewGrowthHandler(growth *service.GrowthService) *GrowthHandler {
	return &GrowthHandler{growth: growth}
}

type GrowthRequestsResponse struct {
	BaseResponse
	Requests []*model.GrowthRequest `json:"requests"`
}

// SubmitHandler creates growth requests for the partner's company.
func (h *GrowthHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.SubmitGrowthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	requests, err := h.growth.Submit(r.Context(), userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Growth request submission error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, GrowthRequestsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Requests:     requests,
	})
}

// ListHandler returns the partner's own growth requests.
func (h *GrowthHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	requests, err := h.growth.ListForPartner(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Growth request list error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, GrowthRequestsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Requests:     requests,
	})
}
