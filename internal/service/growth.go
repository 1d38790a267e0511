package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bridgeops/partnerflow/internal/audit"
	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/email"
	"github.com/bridgeops/partnerflow/internal/email/mailer"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/google/uuid"
)

// GrowthService handles partner growth service requests and their admin
// fulfillment. Requests are PENDING until an admin marks them COMPLETED or
// CANCELLED; both end states are terminal.
type GrowthService struct {
	requestRepo  repository.GrowthRequestRepositoryIface
	companyRepo  repository.CompanyRepositoryIface
	userRepo     repository.UserRepositoryIface
	notifier     *NotificationService
	activityLog  audit.Logger
	emailService *email.Service
}

func NewGrowthService(
	requestRepo repository.GrowthRequestRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier *NotificationService,
	activityLog audit.Logger,
	emailService *email.Service,
) *GrowthService {
	return &GrowthService{
		requestRepo:  requestRepo,
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		activityLog:  activityLog,
		emailService: emailService,
	}
}

type SubmitGrowthInput struct {
	Services []string               `json:"services"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Submit creates one request row per recognized service. Duplicate and
// unrecognized identifiers are dropped; a submission with nothing left after
// filtering is rejected.
func (s *GrowthService) Submit(ctx context.Context, partnerID uuid.UUID, input SubmitGrowthInput) ([]*model.GrowthRequest, error) {
	company, err := s.companyRepo.FindByOwnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[model.GrowthServiceType]bool)
	var services []model.GrowthServiceType
	for _, raw := range input.Services {
		service, ok := model.ParseGrowthService(raw)
		if !ok {
			slog.WarnContext(ctx, "Skipping unrecognized growth service", "service", raw, "company_id", company.ID)
			continue
		}
		if seen[service] {
			continue
		}
		seen[service] = true
		services = append(services, service)
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("%w: no recognized growth services in submission", domain.ErrInvalidInput)
	}

	// All rows for one submission commit together or not at all.
	tx, err := s.requestRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	requests := make([]*model.GrowthRequest, 0, len(services))
	for _, service := range services {
		request := &model.GrowthRequest{
			CompanyID: company.ID,
			Type:      service,
			Details:   model.JSONMap(input.Details),
			Status:    model.GrowthPending,
		}
		if err := s.requestRepo.CreateInTx(ctx, tx, request); err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	names := make([]string, len(services))
	for i, service := range services {
		names[i] = string(service)
	}
	if _, err := s.notifier.Notify(ctx, partnerID, model.NotificationGrowth,
		"Growth request received",
		fmt.Sprintf("We received your request for %s. Our team will follow up shortly.", strings.Join(names, ", ")),
	); err != nil {
		slog.ErrorContext(ctx, "Failed to create notification", "error", err, "company_id", company.ID)
	}

	return requests, nil
}

// UpdateStatus transitions a pending request to COMPLETED or CANCELLED.
func (s *GrowthService) UpdateStatus(ctx context.Context, requestID, adminID uuid.UUID, status model.GrowthRequestStatus) (*model.GrowthRequest, error) {
	if status != model.GrowthCompleted && status != model.GrowthCancelled {
		return nil, fmt.Errorf("%w: status must be COMPLETED or CANCELLED", domain.ErrInvalidInput)
	}

	tx, err := s.requestRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	request, err := s.requestRepo.FindByIDForUpdate(ctx, tx, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status.Terminal() {
		return nil, fmt.Errorf("%w: request is already %s", domain.ErrInvalidTransition, request.Status)
	}

	request.Status = status
	if err := s.requestRepo.UpdateInTx(ctx, tx, request); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	s.recordStatusChange(ctx, request, adminID)

	return request, nil
}

// List returns growth requests for admin review. An empty or "ALL" filter
// returns every request; anything else must be a valid status.
func (s *GrowthService) List(ctx context.Context, filter string) ([]*model.GrowthRequest, error) {
	filter = strings.ToUpper(strings.TrimSpace(filter))
	if filter == "" || filter == "ALL" {
		return s.requestRepo.List(ctx, nil)
	}

	status := model.GrowthRequestStatus(filter)
	switch status {
	case model.GrowthPending, model.GrowthCompleted, model.GrowthCancelled:
	default:
		return nil, fmt.Errorf("%w: unknown status filter %q", domain.ErrInvalidInput, filter)
	}

	return s.requestRepo.List(ctx, &status)
}

// ListForPartner returns the partner's own requests, newest first.
func (s *GrowthService) ListForPartner(ctx context.Context, partnerID uuid.UUID) ([]*model.GrowthRequest, error) {
	company, err := s.companyRepo.FindByOwnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return s.requestRepo.FindByCompanyID(ctx, company.ID)
}

// recordStatusChange writes the audit row and partner-facing notifications
// after a committed status transition. Best effort; failures are logged.
func (s *GrowthService) recordStatusChange(ctx context.Context, request *model.GrowthRequest, adminID uuid.UUID) {
	if err := s.activityLog.LogGrowthRequestUpdate(ctx, adminID, request.ID, string(request.Status), map[string]interface{}{
		"service": string(request.Type),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to write activity log", "error", err, "request_id", request.ID)
	}

	company, err := s.companyRepo.FindByID(ctx, request.CompanyID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load company for growth notification", "error", err, "request_id", request.ID)
		return
	}

	verb := "completed"
	if request.Status == model.GrowthCancelled {
		verb = "cancelled"
	}
	if _, err := s.notifier.Notify(ctx, company.OwnerID, model.NotificationGrowth,
		fmt.Sprintf("Growth request %s", verb),
		fmt.Sprintf("Your %s request has been %s.", request.Type, verb),
	); err != nil {
		slog.ErrorContext(ctx, "Failed to create notification", "error", err, "request_id", request.ID)
	}

	if s.emailService == nil {
		return
	}

	owner, err := s.userRepo.FindByID(ctx, company.OwnerID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load company owner for email", "error", err, "request_id", request.ID)
		return
	}

	if err := mailer.SendGrowthRequestUpdate(s.emailService, owner.Email, string(request.Type), string(request.Status)); err != nil {
		slog.ErrorContext(ctx, "Failed to send growth request email", "error", err, "request_id", request.ID)
	}
}
