package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/mocks"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		state    service.GateState
		expected service.Screen
	}{
		{
			name:     "no company starts at step one",
			state:    service.GateState{},
			expected: service.ScreenOnboardingStep1,
		},
		{
			name:     "plan selected resumes the wizard at the next step",
			state:    service.GateState{HasCompany: true, Step: 2, PlanSelected: true},
			expected: service.ScreenOnboardingStep3,
		},
		{
			name:     "plan selected at step three resumes at step four",
			state:    service.GateState{HasCompany: true, Step: 3, PlanSelected: true},
			expected: service.ScreenOnboardingStep4,
		},
		{
			name:     "completed onboarding goes to dashboard",
			state:    service.GateState{HasCompany: true, Step: 4, PlanSelected: true},
			expected: service.ScreenDashboard,
		},
		{
			name:     "company without plan goes to dashboard",
			state:    service.GateState{HasCompany: true, Step: 2},
			expected: service.ScreenDashboard,
		},
		{
			name:     "degraded with plan restarts the wizard",
			state:    service.GateState{StatusUnavailable: true, PlanSelected: true, HasCompany: true},
			expected: service.ScreenOnboardingStep1,
		},
		{
			name:     "degraded with company falls back to dashboard",
			state:    service.GateState{StatusUnavailable: true, HasCompany: true},
			expected: service.ScreenDashboard,
		},
		{
			name:     "degraded with nothing known starts at step one",
			state:    service.GateState{StatusUnavailable: true},
			expected: service.ScreenOnboardingStep1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Route(tt.state))
		})
	}
}

func TestGateServiceRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("uses the company state when available", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		tier := model.PlanPro
		cycle := model.CycleMonthly
		companyRepo.EXPECT().
			FindByOwnerID(gomock.Any(), userID).
			Return(&model.Company{OwnerID: userID, OnboardingStep: 1, SelectedPlanTier: &tier, SelectedPlanCycle: &cycle}, nil)

		svc := service.NewGateService(companyRepo, intentRepo)

		output, err := svc.Route(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, service.ScreenOnboardingStep2, output.Screen)
		assert.True(t, output.State.PlanSelected)
	})

	t.Run("missing company checks for a plan intent", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), userID).Return(nil, domain.ErrCompanyNotFound)
		intentRepo.EXPECT().
			FindByUser(gomock.Any(), userID).
			Return(&model.PlanIntent{UserID: userID, Tier: model.PlanBasic, Cycle: model.CycleYearly}, nil)

		svc := service.NewGateService(companyRepo, intentRepo)

		output, err := svc.Route(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, service.ScreenOnboardingStep1, output.Screen)
		assert.True(t, output.State.PlanSelected)
		assert.False(t, output.State.HasCompany)
	})

	t.Run("storage failure degrades instead of failing", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), userID).Return(nil, errors.New("connection refused"))

		svc := service.NewGateService(companyRepo, intentRepo)

		output, err := svc.Route(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, output.State.StatusUnavailable)
		assert.Equal(t, service.ScreenOnboardingStep1, output.Screen)
	})
}

func TestSelectPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	input := service.PlanInput{Tier: model.PlanPro, Cycle: model.CycleMonthly}

	t.Run("without a company the choice is held as an intent", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), userID).Return(nil, domain.ErrCompanyNotFound)
		intentRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, intent *model.PlanIntent) error {
				assert.Equal(t, userID, intent.UserID)
				assert.Equal(t, model.PlanPro, intent.Tier)
				return nil
			})

		svc := service.NewGateService(companyRepo, intentRepo)

		assert.NoError(t, svc.SelectPlan(context.Background(), userID, input))
	})

	t.Run("with a company the choice is written to the record", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		company := &model.Company{OwnerID: userID, OnboardingStep: 2}
		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), userID).Return(company, nil)
		companyRepo.EXPECT().
			Update(gomock.Any(), company).
			DoAndReturn(func(_ context.Context, c *model.Company) error {
				if assert.NotNil(t, c.SelectedPlanTier) {
					assert.Equal(t, model.PlanPro, *c.SelectedPlanTier)
				}
				return nil
			})

		svc := service.NewGateService(companyRepo, intentRepo)

		assert.NoError(t, svc.SelectPlan(context.Background(), userID, input))
	})

	t.Run("invalid tier is rejected", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		intentRepo := mocks.NewMockPlanIntentRepositoryIface(ctrl)

		svc := service.NewGateService(companyRepo, intentRepo)

		err := svc.SelectPlan(context.Background(), userID, service.PlanInput{Tier: "platinum", Cycle: model.CycleMonthly})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
