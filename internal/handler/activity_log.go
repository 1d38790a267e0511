// internal/handler/activity_log.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/google/uuid"
)

// ActivityLogHandler handles API requests related to the admin audit trail
type ActivityLogHandler struct {
	activityLog *service.ActivityLogService
}

// NewActivityLogHandler creates a new activity log handler
func NewActivityLogHandler(activityLog *service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activityLog: activityLog}
}

// GetActivityLog handles requests to retrieve audit entries with filtering
func (h *ActivityLogHandler) GetActivityLog(w http.ResponseWriter, r *http.Request) {
	params := repository.ActivityLogQueryParams{}

	// Apply filters from query parameters
	if adminIDStr := r.URL.Query().Get("admin_id"); adminIDStr != "" {
		adminID, err := uuid.Parse(adminIDStr)
		if err == nil {
			params.AdminID = &adminID
		}
	}

	if action := r.URL.Query().Get("action"); action != "" {
		params.Action = action
	}

	if targetType := r.URL.Query().Get("target_type"); targetType != "" {
		params.TargetType = targetType
	}

	if targetID := r.URL.Query().Get("target_id"); targetID != "" {
		params.TargetID = targetID
	}

	if startTimeStr := r.URL.Query().Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := r.URL.Query().Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	entries, total, err := h.activityLog.GetActivityLog(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve activity log")
		return
	}

	response := struct {
		Entries interface{} `json:"entries"`
		Total   int64       `json:"total"`
	}{
		Entries: entries,
		Total:   total,
	}

	respondWithJSON(w, http.StatusOK, response)
}
