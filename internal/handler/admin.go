// internal/handler/admin.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// AdminHandler serves the admin console endpoints. All routes require an
// authenticated ADMIN token.
type AdminHandler struct {
	verification *service.VerificationService
	growth       *service.GrowthService
}

func NewAdminHandler(verification *service.VerificationService, growth *service.GrowthService) *AdminHandler {
	return &AdminHandler{
		verification: verification,
		growth:       growth,
	}
}

type VerificationQueueResponse struct {
	BaseResponse
	Companies []*model.Company `json:"companies"`
}

// VerificationQueueHandler lists companies pending review, oldest first.
func (h *AdminHandler) VerificationQueueHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := h.verification.Queue(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Verification queue error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, VerificationQueueResponse{
		BaseResponse: BaseResponse{Ok: true},
		Companies:    companies,
	})
}

// ApproveHandler marks a company as verified.
func (h *AdminHandler) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	company, err := h.verification.Approve(r.Context(), companyID, adminID)
	if err != nil {
		h.respondDecisionError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

type RejectInput struct {
	Reason string `json:"reason"`
}

// RejectHandler sends a pending company back to unverified.
func (h *AdminHandler) RejectHandler(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var input RejectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.verification.Reject(r.Context(), companyID, adminID, input.Reason)
	if err != nil {
		h.respondDecisionError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

// ResetProfileHandler deletes a partner's company record so onboarding
// starts over from step zero.
func (h *AdminHandler) ResetProfileHandler(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	if err := h.verification.ResetProfile(r.Context(), companyID, adminID); err != nil {
		slog.ErrorContext(r.Context(), "Profile reset error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// AdminGrowthRequest joins a request with the owning company's identity so
// the admin console can render the list without extra lookups.
type AdminGrowthRequest struct {
	*model.GrowthRequest
	CompanyName string `json:"company_name"`
}

type AdminGrowthRequestsResponse struct {
	BaseResponse
	Requests []AdminGrowthRequest `json:"requests"`
}

// GrowthRequestsHandler lists growth requests, optionally filtered by status.
func (h *AdminHandler) GrowthRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.growth.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Growth request list error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	views := make([]AdminGrowthRequest, len(requests))
	for i, request := range requests {
		views[i] = AdminGrowthRequest{
			GrowthRequest: request,
			CompanyName:   request.Company.Name,
		}
	}

	respondWithJSON(w, http.StatusOK, AdminGrowthRequestsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Requests:     views,
	})
}

type GrowthStatusInput struct {
	Status model.GrowthRequestStatus `json:"status"`
}

// GrowthStatusHandler transitions a pending request to COMPLETED or
// CANCELLED.
func (h *AdminHandler) GrowthStatusHandler(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var input GrowthStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	request, err := h.growth.UpdateStatus(r.Context(), requestID, adminID, input.Status)
	if err != nil {
		slog.ErrorContext(r.Context(), "Growth status update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRequestNotFound):
			respondWithError(w, http.StatusNotFound, "Growth request not found")
		case errors.Is(err, domain.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Request *model.GrowthRequest `json:"request"`
	}{BaseResponse{Ok: true}, request})
}

func (h *AdminHandler) respondDecisionError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Verification decision error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		respondWithError(w, http.StatusNotFound, "Company not found")
	case errors.Is(err, domain.ErrAlreadyVerified):
		respondWithError(w, http.StatusConflict, "Company is already verified")
	case errors.Is(err, domain.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
