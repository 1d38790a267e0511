package service_test

import (
	"context"
	"testing"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/mocks"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()

	t.Run("no company means step zero", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		companyRepo.EXPECT().
			FindByOwnerID(gomock.Any(), partnerID).
			Return(nil, domain.ErrCompanyNotFound)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		status, err := svc.GetStatus(context.Background(), partnerID)
		assert.NoError(t, err)
		assert.Equal(t, 0, status.Step)
		assert.False(t, status.HasCompany)
		assert.Nil(t, status.Company)
	})

	t.Run("existing company reports its step", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		companyRepo.EXPECT().
			FindByOwnerID(gomock.Any(), partnerID).
			Return(&model.Company{OwnerID: partnerID, OnboardingStep: 3}, nil)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		status, err := svc.GetStatus(context.Background(), partnerID)
		assert.NoError(t, err)
		assert.Equal(t, 3, status.Step)
		assert.True(t, status.HasCompany)
	})
}

func TestAdvanceStepOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()

	input := service.StepOneInput{
		Name:         "Harbor Tours",
		Category:     "activities",
		Location:     "Copenhagen",
		ContactEmail: "info@harbortours.example",
	}

	t.Run("creates company and folds in plan intent", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().
			FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).
			Return(nil, domain.ErrCompanyNotFound)
		intentRepo.EXPECT().
			FindByUser(gomock.Any(), partnerID).
			Return(&model.PlanIntent{UserID: partnerID, Tier: model.PlanPro, Cycle: model.CycleMonthly}, nil)
		companyRepo.EXPECT().
			CreateInTx(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, company *model.Company) error {
				assert.Equal(t, 1, company.OnboardingStep)
				assert.Equal(t, "Harbor Tours", company.Name)
				if assert.NotNil(t, company.SelectedPlanTier) {
					assert.Equal(t, model.PlanPro, *company.SelectedPlanTier)
				}
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepOne(context.Background(), partnerID, input)
		assert.NoError(t, err)
		assert.Equal(t, 1, company.OnboardingStep)
	})

	t.Run("resubmission never lowers the step", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 3, Name: "Old Name"}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().
			FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).
			Return(existing, nil)
		companyRepo.EXPECT().
			UpdateInTx(gomock.Any(), tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, company *model.Company) error {
				assert.Equal(t, 3, company.OnboardingStep)
				assert.Equal(t, "Harbor Tours", company.Name)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepOne(context.Background(), partnerID, input)
		assert.NoError(t, err)
		assert.Equal(t, 3, company.OnboardingStep)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		_, err := svc.AdvanceStepOne(context.Background(), partnerID, service.StepOneInput{Name: "X"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAdvanceStepTwo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()

	t.Run("requires an existing company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().
			FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).
			Return(nil, domain.ErrCompanyNotFound)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		_, err := svc.AdvanceStepTwo(context.Background(), partnerID, service.StepTwoInput{Description: "Boat tours"})
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})

	t.Run("advances the step and stores the description", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 1}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().
			FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).
			Return(existing, nil)
		companyRepo.EXPECT().UpdateInTx(gomock.Any(), tx, existing).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepTwo(context.Background(), partnerID, service.StepTwoInput{
			Description: "Boat tours in the harbor",
			Tagline:     "See the city from the water",
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, company.OnboardingStep)
		assert.Equal(t, "Boat tours in the harbor", company.Description)
	})
}

func TestAdvanceStepThree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()

	t.Run("advances the step and stores the gallery", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 2}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().
			FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).
			Return(existing, nil)
		companyRepo.EXPECT().UpdateInTx(gomock.Any(), tx, existing).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepThree(context.Background(), partnerID, service.StepThreeInput{
			MediaURLs: []string{"https://cdn.example/boat.jpg", "https://cdn.example/harbor.jpg"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, company.OnboardingStep)
		assert.Equal(t, model.StringArray{"https://cdn.example/boat.jpg", "https://cdn.example/harbor.jpg"}, company.MediaURLs)
	})

	t.Run("rejects an empty gallery", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		_, err := svc.AdvanceStepThree(context.Background(), partnerID, service.StepThreeInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects malformed urls", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		_, err := svc.AdvanceStepThree(context.Background(), partnerID, service.StepThreeInput{
			MediaURLs: []string{"not a url"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAdvanceStepFour(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()

	evidence := &service.EvidenceInput{
		CVRNumber:       "12345678",
		PermitDocuments: []string{"https://docs.example/permit.pdf"},
	}

	t.Run("completes without evidence and stays unverified", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 3, VerificationStatus: model.VerificationUnverified}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).Return(existing, nil)
		companyRepo.EXPECT().UpdateInTx(gomock.Any(), tx, existing).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepFour(context.Background(), partnerID, service.StepFourInput{})
		assert.NoError(t, err)
		assert.Equal(t, model.OnboardingComplete, company.OnboardingStep)
		assert.Equal(t, model.VerificationUnverified, company.VerificationStatus)
	})

	t.Run("evidence moves the company to pending", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 3, VerificationStatus: model.VerificationUnverified}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).Return(existing, nil)
		companyRepo.EXPECT().UpdateInTx(gomock.Any(), tx, existing).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepFour(context.Background(), partnerID, service.StepFourInput{Evidence: evidence})
		assert.NoError(t, err)
		assert.Equal(t, model.VerificationPending, company.VerificationStatus)
		assert.Equal(t, "12345678", company.CVRNumber)
	})

	t.Run("evidence never downgrades a verified company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		existing := &model.Company{OwnerID: partnerID, OnboardingStep: 3, VerificationStatus: model.VerificationVerified}

		companyRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		companyRepo.EXPECT().FindByOwnerIDForUpdate(gomock.Any(), tx, partnerID).Return(existing, nil)
		companyRepo.EXPECT().UpdateInTx(gomock.Any(), tx, existing).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		company, err := svc.AdvanceStepFour(context.Background(), partnerID, service.StepFourInput{Evidence: evidence})
		assert.NoError(t, err)
		assert.Equal(t, model.VerificationVerified, company.VerificationStatus)
	})

	t.Run("partial evidence is rejected", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		svc := service.NewOnboardingService(companyRepo, intentRepo)

		_, err := svc.AdvanceStepFour(context.Background(), partnerID, service.StepFourInput{
			Evidence: &service.EvidenceInput{CVRNumber: "12345678"},
		})
		assert.ErrorIs(t, err, domain.ErrMissingEvidence)
	})
}
