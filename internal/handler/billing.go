// internal/handler/billing.go
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

// BillingHandler covers the partner plan selection endpoint and the billing
// processor callback.
type BillingHandler struct {
	gate          *service.GateService
	subscriptions *service.SubscriptionService
	webhookSecret string
}

func NewBillingHandler(gate *service.GateService, subscriptions *service.SubscriptionService, webhookSecret string) *BillingHandler {
	return &BillingHandler{
		gate:          gate,
		subscriptions: subscriptions,
		webhookSecret: webhookSecret,
	}
}

// SelectPlanHandler records the partner's plan choice. Works before and
// after the company record exists.
func (h *BillingHandler) SelectPlanHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var input service.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.gate.SelectPlan(r.Context(), userID, input); err != nil {
		slog.ErrorContext(r.Context(), "Plan selection error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// SubscriptionHandler returns the partner's current subscription, if any.
func (h *BillingHandler) SubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	subscription, err := h.subscriptions.GetForPartner(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Subscription lookup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondWithError(w, http.StatusNotFound, "Company not found")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Subscription *model.Subscription `json:"subscription"`
	}{BaseResponse{Ok: true}, subscription})
}

// WebhookHandler consumes billing processor callbacks. The shared secret in
// the header stands in for processor signature verification.
func (h *BillingHandler) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	if h.webhookSecret == "" || r.Header.Get("X-Webhook-Secret") != h.webhookSecret {
		respondWithError(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	var input service.BillingEventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	subscription, err := h.subscriptions.ApplyBillingEvent(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Billing webhook error", "error", err, "requestID", chmw.GetReqID(r.Context()))
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

	respondWithJSON(w, http.StatusOK, struct {
		BaseResponse
		Subscription *model.Subscription `json:"subscription"`
	}{BaseResponse{Ok: true}, subscription})
}
