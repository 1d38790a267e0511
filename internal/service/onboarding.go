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

// OnboardingService is the server-authoritative side of the onboarding
// wizard. The persisted step only ever moves forward; each step has its own
// validated payload.
type OnboardingService struct {
	companyRepo repository.CompanyRepositoryIface
	intentRepo  repository.PlanIntentRepositoryIface
	validate    *validator.Validate
}

func NewOnboardingService(
	companyRepo repository.CompanyRepositoryIface,
	intentRepo repository.PlanIntentRepositoryIface,
) *OnboardingService {
	return &OnboardingService{
		companyRepo: companyRepo,
		intentRepo:  intentRepo,
		validate:    validator.New(),
	}
}

type StatusOutput struct {
	Step       int            `json:"step"`
	HasCompany bool           `json:"has_company"`
	Company    *model.Company `json:"company,omitempty"`
}

// GetStatus reads the partner's onboarding state. A missing company record
// is not an error here: it means step 0, nothing started.
func (s *OnboardingService) GetStatus(ctx context.Context, partnerID uuid.UUID) (*StatusOutput, error) {
	company, err := s.companyRepo.FindByOwnerID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return &StatusOutput{Step: model.OnboardingNotStarted, HasCompany: false}, nil
		}
		return nil, err
	}

	return &StatusOutput{
		Step:       company.OnboardingStep,
		HasCompany: true,
		Company:    company,
	}, nil
}

type StepOneInput struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Location     string `json:"location" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
}

// AdvanceStepOne persists the identifying fields and creates the company
// record if this is the partner's first submission.
func (s *OnboardingService) AdvanceStepOne(ctx context.Context, partnerID uuid.UUID, input StepOneInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByOwnerIDForUpdate(ctx, tx, partnerID)
	if err != nil && !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	if company == nil {
		company = &model.Company{
			OwnerID:        partnerID,
			Name:           input.Name,
			Category:       input.Category,
			Location:       input.Location,
			ContactEmail:   input.ContactEmail,
			OnboardingStep: 1,
		}

		// Fold any pre-signup plan choice into the new record.
		if intent, ierr := s.intentRepo.FindByUser(ctx, partnerID); ierr == nil {
			company.SelectedPlanTier = &intent.Tier
			company.SelectedPlanCycle = &intent.Cycle
		}

		if err := s.companyRepo.CreateInTx(ctx, tx, company); err != nil {
			return nil, err
		}
	} else {
		company.Name = input.Name
		company.Category = input.Category
		company.Location = input.Location
		company.ContactEmail = input.ContactEmail
		bumpStep(company, 1)

		if err := s.companyRepo.UpdateInTx(ctx, tx, company); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return company, nil
}

type StepTwoInput struct {
	Description string `json:"description" validate:"required"`
	Tagline     string `json:"tagline"`
}

// AdvanceStepTwo persists the descriptive fields.
func (s *OnboardingService) AdvanceStepTwo(ctx context.Context, partnerID uuid.UUID, input StepTwoInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	return s.advance(ctx, partnerID, 2, func(company *model.Company) {
		company.Description = input.Description
		company.Tagline = input.Tagline
	})
}

type StepThreeInput struct {
	MediaURLs []string `json:"media_urls" validate:"required,min=1,dive,url"`
}

// AdvanceStepThree persists the media gallery.
func (s *OnboardingService) AdvanceStepThree(ctx context.Context, partnerID uuid.UUID, input StepThreeInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	return s.advance(ctx, partnerID, 3, func(company *model.Company) {
		company.MediaURLs = input.MediaURLs
	})
}

type EvidenceInput struct {
	CVRNumber       string   `json:"cvr_number" validate:"required"`
	LegalName       string   `json:"legal_name"`
	BusinessAddress string   `json:"business_address"`
	PermitType      string   `json:"permit_type"`
	PermitIssuer    string   `json:"permit_issuer"`
	PermitDocuments []string `json:"permit_documents" validate:"required,min=1,dive,required"`
}

type StepFourInput struct {
	Evidence *EvidenceInput `json:"evidence,omitempty"`
}

// AdvanceStepFour finalizes structural onboarding. When verification
// evidence is attached it is validated and the company moves to pending
// review, unless an admin already verified it.
func (s *OnboardingService) AdvanceStepFour(ctx context.Context, partnerID uuid.UUID, input StepFourInput) (*model.Company, error) {
	if input.Evidence != nil {
		if err := s.validate.Struct(input.Evidence); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingEvidence, err)
		}
	}

	return s.advance(ctx, partnerID, model.OnboardingComplete, func(company *model.Company) {
		if input.Evidence == nil {
			return
		}

		applyEvidence(company, *input.Evidence)
		if company.VerificationStatus != model.VerificationVerified {
			company.VerificationStatus = model.VerificationPending
		}
	})
}

// advance runs a step mutation under a row lock so concurrent submissions
// for the same company cannot interleave. Steps beyond 1 require an existing
// record.
func (s *OnboardingService) advance(ctx context.Context, partnerID uuid.UUID, step int, apply func(*model.Company)) (*model.Company, error) {
	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	company, err := s.companyRepo.FindByOwnerIDForUpdate(ctx, tx, partnerID)
	if err != nil {
		return nil, err
	}

	apply(company)
	bumpStep(company, step)

	if err := s.companyRepo.UpdateInTx(ctx, tx, company); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return company, nil
}

// bumpStep raises the onboarding step, never lowering it.
func bumpStep(company *model.Company, step int) {
	if step > company.OnboardingStep {
		company.OnboardingStep = step
	}
}

func applyEvidence(company *model.Company, evidence EvidenceInput) {
	company.CVRNumber = evidence.CVRNumber
	company.LegalName = evidence.LegalName
	company.BusinessAddress = evidence.BusinessAddress
	company.PermitType = evidence.PermitType
	company.PermitIssuer = evidence.PermitIssuer
	company.PermitDocuments = evidence.PermitDocuments
}
