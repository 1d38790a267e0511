package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Screen identifies the partner-facing screen the client should render next.
type Screen string

const (
	ScreenOnboardingStep1 Screen = "onboarding_step_1"
	ScreenOnboardingStep2 Screen = "onboarding_step_2"
	ScreenOnboardingStep3 Screen = "onboarding_step_3"
	ScreenOnboardingStep4 Screen = "onboarding_step_4"
	ScreenPlanReview      Screen = "plan_review"
	ScreenDashboard       Screen = "dashboard"
)

// GateState is everything the routing decision depends on.
type GateState struct {
	HasCompany        bool
	Step              int
	PlanSelected      bool
	StatusUnavailable bool
}

// Route decides which screen a partner lands on. When the onboarding status
// could not be fetched the gate degrades: anyone with a plan restarts the
// wizard, anyone with a known company goes to the dashboard, and the rest
// start from step one. Nobody is locked out on a read failure.
func Route(s GateState) Screen {
	if s.StatusUnavailable {
		if s.PlanSelected {
			return ScreenOnboardingStep1
		}
		if s.HasCompany {
			return ScreenDashboard
		}
		return ScreenOnboardingStep1
	}

	if !s.HasCompany {
		return ScreenOnboardingStep1
	}

	if s.PlanSelected && s.Step < model.OnboardingComplete {
		return stepScreen(s.Step + 1)
	}

	return ScreenDashboard
}

func stepScreen(step int) Screen {
	switch step {
	case 1:
		return ScreenOnboardingStep1
	case 2:
		return ScreenOnboardingStep2
	case 3:
		return ScreenOnboardingStep3
	default:
		return ScreenOnboardingStep4
	}
}

// GateService resolves gate state from storage and records plan selections.
type GateService struct {
	companyRepo repository.CompanyRepositoryIface
	intentRepo  repository.PlanIntentRepositoryIface
	validate    *validator.Validate
}

func NewGateService(
	companyRepo repository.CompanyRepositoryIface,
	intentRepo repository.PlanIntentRepositoryIface,
) *GateService {
	return &GateService{
		companyRepo: companyRepo,
		intentRepo:  intentRepo,
		validate:    validator.New(),
	}
}

type RouteOutput struct {
	Screen Screen    `json:"screen"`
	State  GateState `json:"state"`
}

// Route loads the partner's current state and runs the gate over it. Storage
// errors do not fail the call; they flip StatusUnavailable and the gate picks
// the degraded path.
func (s *GateService) Route(ctx context.Context, userID uuid.UUID) (*RouteOutput, error) {
	state := GateState{}

	company, err := s.companyRepo.FindByOwnerID(ctx, userID)
	switch {
	case err == nil:
		state.HasCompany = true
		state.Step = company.OnboardingStep
		state.PlanSelected = company.HasSelectedPlan()
	case errors.Is(err, domain.ErrCompanyNotFound):
		if _, ierr := s.intentRepo.FindByUser(ctx, userID); ierr == nil {
			state.PlanSelected = true
		}
	default:
		state.StatusUnavailable = true
	}

	return &RouteOutput{Screen: Route(state), State: state}, nil
}

type PlanInput struct {
	Tier  model.PlanTier     `json:"tier" validate:"required,oneof=basic pro premium"`
	Cycle model.BillingCycle `json:"cycle" validate:"required,oneof=monthly yearly"`
}

// SelectPlan records the partner's plan choice. Before a company record
// exists the choice is held as a pending intent and folded in when the
// record is created; afterwards it is written straight onto the company.
func (s *GateService) SelectPlan(ctx context.Context, userID uuid.UUID, input PlanInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	company, err := s.companyRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return s.intentRepo.Upsert(ctx, &model.PlanIntent{
				UserID: userID,
				Tier:   input.Tier,
				Cycle:  input.Cycle,
			})
		}
		return err
	}

	company.SelectedPlanTier = &input.Tier
	company.SelectedPlanCycle = &input.Cycle

	return s.companyRepo.Update(ctx, company)
}
