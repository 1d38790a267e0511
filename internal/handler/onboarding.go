// internal/handler/onboarding.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// OnboardingHandler serves the partner onboarding wizard endpoints. All
// routes require an authenticated PARTNER token.
type OnboardingHandler struct {
	onboarding   *service.OnboardingService
	verification *service.VerificationService
	gate         *service.GateService
}

func NewOnboardingHandler(
	onboarding *service.OnboardingService,
	verification *service.VerificationService,
	gate *service.GateService,
) *OnboardingHandler {
	return &OnboardingHandler{
		onboarding:   onboarding,
		verification: verification,
		gate:         gate,
	}
}

func (h *OnboardingHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	status, err := h.onboarding.GetStatus(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Onboarding status error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, status)
}

func (h *OnboardingHandler) StepOneHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.StepOneInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.onboarding.AdvanceStepOne(r.Context(), userID, input)
	if err != nil {
		h.respondStepError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

func (h *OnboardingHandler) StepTwoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.StepTwoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.onboarding.AdvanceStepTwo(r.Context(), userID, input)
	if err != nil {
		h.respondStepError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

func (h *OnboardingHandler) StepThreeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.StepThreeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.onboarding.AdvanceStepThree(r.Context(), userID, input)
	if err != nil {
		h.respondStepError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

func (h *OnboardingHandler) StepFourHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.StepFourInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.onboarding.AdvanceStepFour(r.Context(), userID, input)
	if err != nil {
		h.respondStepError(w, r, err)
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

// VerifyHandler lets a partner submit or refresh verification evidence
// outside the wizard, after onboarding is already complete.
func (h *OnboardingHandler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.EvidenceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.verification.RequestVerification(r.Context(), userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Verification request error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrMissingEvidence):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrAlreadyVerified):
			respondWithError(w, http.StatusConflict, "Company is already verified")
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithCompany(w, http.StatusOK, company)
}

// RouteHandler tells the client which screen to show next.
func (h *OnboardingHandler) RouteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	output, err := h.gate.Route(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Gate routing error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}

func (h *OnboardingHandler) respondStepError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "Onboarding step error", "error", err, "requestID", chmw.GetReqID(r.Context()))
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingEvidence):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCompanyNotFound):
		respondWithError(w, http.StatusNotFound, "Complete step one before continuing")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
