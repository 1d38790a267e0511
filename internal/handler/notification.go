// internal/handler/notification.go
package handler

import (
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

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type NotificationsResponse struct {
	BaseResponse
	Notifications []*model.Notification `json:"notifications"`
}

// ListHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	notifications, err := h.notifications.ListForUser(r.Context(), userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "Notification list error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, NotificationsResponse{
		BaseResponse:  BaseResponse{Ok: true},
		Notifications: notifications,
	})
}

// MarkReadHandler flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	if err := h.notifications.MarkRead(r.Context(), userID, notificationID); err != nil {
		slog.ErrorContext(r.Context(), "Notification mark read error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrNotificationNotFound):
			respondWithError(w, http.StatusNotFound, "Notification not found")
		case errors.Is(err, domain.ErrForbidden):
			respondWithError(w, http.StatusForbidden, "Insufficient permissions")
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
