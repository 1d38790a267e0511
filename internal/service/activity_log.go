package service

import (
	"context"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/audit"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Ensure ActivityLogService implements the audit.Logger interface
var _ audit.Logger = (*ActivityLogService)(nil)

// ActivityLogService records privileged admin actions as append-only audit
// rows. Entries are never updated or deleted.
type ActivityLogService struct {
	repo repository.ActivityLogRepositoryIface
}

// NewActivityLogService creates a new ActivityLogService
func NewActivityLogService(repo repository.ActivityLogRepositoryIface) *ActivityLogService {
	return &ActivityLogService{
		repo: repo,
	}
}

// LogVerificationDecision logs an approve or reject decision on a company's
// verification request
func (s *ActivityLogService) LogVerificationDecision(
	ctx context.Context,
	adminID uuid.UUID,
	companyID uuid.UUID,
	approved bool,
	details map[string]interface{},
) error {
	action := model.ActionApproveVerification
	if !approved {
		action = model.ActionRejectVerification
	}

	entry := &model.AdminActivityLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: model.TargetCompany,
		TargetID:   companyID.String(),
		Details:    model.JSONMap(details),
		RequestID:  middleware.GetReqID(ctx),
	}

	return s.repo.Create(ctx, entry)
}

// LogGrowthRequestUpdate logs a status change on a growth request
func (s *ActivityLogService) LogGrowthRequestUpdate(
	ctx context.Context,
	adminID uuid.UUID,
	requestID uuid.UUID,
	newStatus string,
	details map[string]interface{},
) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["new_status"] = newStatus

	entry := &model.AdminActivityLog{
		AdminID:    adminID,
		Action:     model.ActionGrowthStatusUpdate,
		TargetType: model.TargetGrowthRequest,
		TargetID:   requestID.String(),
		Details:    model.JSONMap(details),
		RequestID:  middleware.GetReqID(ctx),
	}

	return s.repo.Create(ctx, entry)
}

// LogProfileReset logs deletion of a partner's company record
func (s *ActivityLogService) LogProfileReset(
	ctx context.Context,
	adminID uuid.UUID,
	companyID uuid.UUID,
) error {
	entry := &model.AdminActivityLog{
		AdminID:    adminID,
		Action:     model.ActionResetPartnerProfile,
		TargetType: model.TargetCompany,
		TargetID:   companyID.String(),
		RequestID:  middleware.GetReqID(ctx),
	}

	return s.repo.Create(ctx, entry)
}

// LogAdminAction logs any other privileged mutation
func (s *ActivityLogService) LogAdminAction(
	ctx context.Context,
	adminID uuid.UUID,
	action string,
	targetType string,
	targetID string,
	details map[string]interface{},
) error {
	entry := &model.AdminActivityLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    model.JSONMap(details),
		RequestID:  middleware.GetReqID(ctx),
	}

	return s.repo.Create(ctx, entry)
}

// GetActivityLog retrieves audit entries based on query parameters
func (s *ActivityLogService) GetActivityLog(
	ctx context.Context,
	params repository.ActivityLogQueryParams,
) ([]model.AdminActivityLog, int64, error) {
	entries, count, err := s.repo.Query(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activity log: %w", err)
	}

	return entries, count, nil
}
