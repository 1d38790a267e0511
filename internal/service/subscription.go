package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubscriptionService consumes billing processor callbacks and serves the
// current subscription state for a partner's company.
type SubscriptionService struct {
	subRepo     repository.SubscriptionRepositoryIface
	companyRepo repository.CompanyRepositoryIface
	notifier    *NotificationService
	validate    *validator.Validate
}

func NewSubscriptionService(
	subRepo repository.SubscriptionRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	notifier *NotificationService,
) *SubscriptionService {
	return &SubscriptionService{
		subRepo:     subRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		validate:    validator.New(),
	}
}

type BillingEventInput struct {
	CompanyID        uuid.UUID          `json:"company_id" validate:"required"`
	Tier             model.PlanTier     `json:"tier" validate:"required,oneof=basic pro premium"`
	Cycle            model.BillingCycle `json:"cycle" validate:"required,oneof=monthly yearly"`
	Status           string             `json:"status" validate:"required,oneof=active past_due canceled"`
	ExternalRef      string             `json:"external_ref"`
	CurrentPeriodEnd *time.Time         `json:"current_period_end,omitempty"`
}

// ApplyBillingEvent upserts the subscription row from a processor callback.
// Callbacks may be replayed; the upsert makes this idempotent.
func (s *SubscriptionService) ApplyBillingEvent(ctx context.Context, input BillingEventInput) (*model.Subscription, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	company, err := s.companyRepo.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	subscription := &model.Subscription{
		CompanyID:        company.ID,
		Tier:             input.Tier,
		Cycle:            input.Cycle,
		Status:           model.SubscriptionStatus(input.Status),
		ExternalRef:      input.ExternalRef,
		CurrentPeriodEnd: input.CurrentPeriodEnd,
	}

	if err := s.subRepo.Upsert(ctx, subscription); err != nil {
		return nil, err
	}

	title := "Subscription updated"
	message := fmt.Sprintf("Your %s subscription is now %s.", input.Tier, input.Status)
	if _, err := s.notifier.Notify(ctx, company.OwnerID, model.NotificationBilling, title, message); err != nil {
		slog.ErrorContext(ctx, "Failed to create notification", "error", err, "company_id", company.ID)
	}

	return subscription, nil
}

// GetForPartner returns the partner's subscription, if any. A missing row is
// reported as nil, not an error; most partners never complete checkout.
func (s *SubscriptionService) GetForPartner(ctx context.Context, partnerID uuid.UUID) (*model.Subscription, error) {
	company, err := s.companyRepo.FindByOwnerID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.subRepo.FindByCompanyID(ctx, company.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return subscription, nil
}
