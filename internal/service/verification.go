package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bridgeops/partnerflow/internal/audit"
	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/email"
	"github.com/bridgeops/partnerflow/internal/email/mailer"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultRejectionReason is recorded when an admin rejects without giving one.
const DefaultRejectionReason = "Verification rejected"

// VerificationService drives the company verification state machine:
// unverified -> pending (partner submits evidence) -> verified or back to
// unverified (admin decision). Only admin actions leave pending.
type VerificationService struct {
	companyRepo  repository.CompanyRepositoryIface
	userRepo     repository.UserRepositoryIface
	notifier     *NotificationService
	activityLog  audit.Logger
	emailService *email.Service
	validate     *validator.Validate
}

func NewVerificationService(
	companyRepo repository.CompanyRepositoryIface,
	userRepo repository.UserRepositoryIface,
	notifier *NotificationService,
	activityLog audit.Logger,
	emailService *email.Service,
) *VerificationService {
	return &VerificationService{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		activityLog:  activityLog,
		emailService: emailService,
		validate:     validator.New(),
	}
}

// RequestVerification submits (or re-submits) verification evidence for the
// partner's company. Calling it again while already pending just refreshes
// the evidence; it never produces a second pending record.
func (s *VerificationService) RequestVerification(ctx context.Context, partnerID uuid.UUID, input EvidenceInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingEvidence, err)
	}

	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByOwnerIDForUpdate(ctx, tx, partnerID)
	if err != nil {
		return nil, err
	}

	// An admin decision that committed first wins; a verified company has
	// nothing left to request.
	if company.VerificationStatus == model.VerificationVerified {
		return nil, domain.ErrAlreadyVerified
	}

	applyEvidence(company, input)
	company.VerificationStatus = model.VerificationPending

	if err := s.companyRepo.UpdateInTx(ctx, tx, company); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return company, nil
}

// Approve marks a company as verified. Approval straight from unverified is
// tolerated as an admin override; approving twice is a conflict.
func (s *VerificationService) Approve(ctx context.Context, companyID, adminID uuid.UUID) (*model.Company, error) {
	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByIDForUpdate(ctx, tx, companyID)
	if err != nil {
		return nil, err
	}

	if company.VerificationStatus == model.VerificationVerified {
		return nil, domain.ErrAlreadyVerified
	}

	now := time.Now().UTC()
	company.VerificationStatus = model.VerificationVerified
	company.VerificationNotes = ""
	company.VerifiedAt = &now
	company.VerifiedByID = &adminID

	if err := s.companyRepo.UpdateInTx(ctx, tx, company); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	s.recordDecision(ctx, company, adminID, true, "")

	return company, nil
}

// Reject sends a pending company back to unverified with the given reason.
func (s *VerificationService) Reject(ctx context.Context, companyID, adminID uuid.UUID, reason string) (*model.Company, error) {
	if reason == "" {
		reason = DefaultRejectionReason
	}

	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByIDForUpdate(ctx, tx, companyID)
	if err != nil {
		return nil, err
	}

	if company.VerificationStatus != model.VerificationPending {
		return nil, fmt.Errorf("%w: cannot reject a %s company", domain.ErrInvalidTransition, company.VerificationStatus)
	}

	company.VerificationStatus = model.VerificationUnverified
	company.VerificationNotes = reason
	company.VerifiedAt = nil
	company.VerifiedByID = nil

	if err := s.companyRepo.UpdateInTx(ctx, tx, company); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	s.recordDecision(ctx, company, adminID, false, reason)

	return company, nil
}

// Queue lists companies waiting for an admin decision, oldest first.
func (s *VerificationService) Queue(ctx context.Context) ([]*model.Company, error) {
	return s.companyRepo.FindPendingVerification(ctx)
}

// ResetProfile deletes the partner's company record entirely. This is the
// only path that lowers an onboarding step.
func (s *VerificationService) ResetProfile(ctx context.Context, companyID, adminID uuid.UUID) error {
	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByIDForUpdate(ctx, tx, companyID)
	if err != nil {
		return err
	}

	if err := s.companyRepo.DeleteInTx(ctx, tx, company.ID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	if err := s.activityLog.LogProfileReset(ctx, adminID, company.ID); err != nil {
		slog.ErrorContext(ctx, "Failed to write activity log", "error", err, "company_id", company.ID)
	}

	return nil
}

// recordDecision writes the audit row and partner-facing notifications for
// an approve/reject. The state change is already committed; these side
// effects are best effort and failures are logged, not surfaced.
func (s *VerificationService) recordDecision(ctx context.Context, company *model.Company, adminID uuid.UUID, approved bool, reason string) {
	details := map[string]interface{}{"company_name": company.Name}
	if !approved {
		details["reason"] = reason
	}

	if err := s.activityLog.LogVerificationDecision(ctx, adminID, company.ID, approved, details); err != nil {
		slog.ErrorContext(ctx, "Failed to write activity log", "error", err, "company_id", company.ID)
	}

	title := "Your business is now verified"
	message := fmt.Sprintf("%s passed verification and is eligible for the verified partner rotation.", company.Name)
	if !approved {
		title = "Your verification was rejected"
		message = fmt.Sprintf("Verification for %s was rejected: %s", company.Name, reason)
	}

	if _, err := s.notifier.Notify(ctx, company.OwnerID, model.NotificationVerification, title, message); err != nil {
		slog.ErrorContext(ctx, "Failed to create notification", "error", err, "company_id", company.ID)
	}

	if s.emailService == nil {
		return
	}

	owner, err := s.userRepo.FindByID(ctx, company.OwnerID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load company owner for email", "error", err, "company_id", company.ID)
		return
	}

	if err := mailer.SendVerificationDecision(s.emailService, owner.Email, company.Name, approved, reason); err != nil {
		slog.ErrorContext(ctx, "Failed to send verification decision email", "error", err, "company_id", company.ID)
	}
}
