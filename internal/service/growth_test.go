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

func TestSubmitGrowthRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	partnerID := uuid.New()
	companyID := uuid.New()
	company := &model.Company{ID: companyID, OwnerID: partnerID, Name: "Harbor Tours"}

	newService := func(requestRepo *mocks.MockGrowthRequestRepositoryIface, companyRepo *mocks.MockCompanyRepositoryIface, notificationRepo *mocks.MockNotificationRepositoryIface) *service.GrowthService {
		return service.NewGrowthService(
			requestRepo,
			companyRepo,
			mocks.NewMockUserRepositoryIface(ctrl),
			service.NewNotificationService(notificationRepo),
			mocks.NewMockLogger(ctrl),
			nil,
		)
	}

	t.Run("one row per recognized service, committed together", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), partnerID).Return(company, nil)
		requestRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		requestRepo.EXPECT().CreateInTx(gomock.Any(), tx, gomock.Any()).Return(nil).Times(2)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()
		notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := newService(requestRepo, companyRepo, notificationRepo)

		requests, err := svc.Submit(context.Background(), partnerID, service.SubmitGrowthInput{
			Services: []string{"seo", "ads"},
		})
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.Equal(t, model.ServiceSEO, requests[0].Type)
		assert.Equal(t, model.ServiceAds, requests[1].Type)
		for _, request := range requests {
			assert.Equal(t, companyID, request.CompanyID)
			assert.Equal(t, model.GrowthPending, request.Status)
		}
	})

	t.Run("a failed insert rolls back the whole submission", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), partnerID).Return(company, nil)
		requestRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		gomock.InOrder(
			requestRepo.EXPECT().CreateInTx(gomock.Any(), tx, gomock.Any()).Return(nil),
			requestRepo.EXPECT().CreateInTx(gomock.Any(), tx, gomock.Any()).Return(errors.New("insert failed")),
		)
		tx.EXPECT().Rollback().Return(nil)

		svc := newService(requestRepo, companyRepo, notificationRepo)

		_, err := svc.Submit(context.Background(), partnerID, service.SubmitGrowthInput{
			Services: []string{"seo", "ads"},
		})
		assert.Error(t, err)
	})

	t.Run("duplicates and unrecognized identifiers are dropped", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), partnerID).Return(company, nil)
		requestRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		requestRepo.EXPECT().CreateInTx(gomock.Any(), tx, gomock.Any()).Return(nil).Times(1)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()
		notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := newService(requestRepo, companyRepo, notificationRepo)

		requests, err := svc.Submit(context.Background(), partnerID, service.SubmitGrowthInput{
			Services: []string{"SEO", "seo", "billboard"},
		})
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
		assert.Equal(t, model.ServiceSEO, requests[0].Type)
	})

	t.Run("nothing recognized is an error", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), partnerID).Return(company, nil)

		svc := newService(requestRepo, companyRepo, notificationRepo)

		_, err := svc.Submit(context.Background(), partnerID, service.SubmitGrowthInput{
			Services: []string{"billboard", "radio"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("requires an existing company", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)

		companyRepo.EXPECT().FindByOwnerID(gomock.Any(), partnerID).Return(nil, domain.ErrCompanyNotFound)

		svc := newService(requestRepo, companyRepo, notificationRepo)

		_, err := svc.Submit(context.Background(), partnerID, service.SubmitGrowthInput{
			Services: []string{"seo"},
		})
		assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	})
}

func TestUpdateGrowthStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	companyID := uuid.New()
	adminID := uuid.New()
	ownerID := uuid.New()

	t.Run("pending request is completed with audit and notification", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		notificationRepo := mocks.NewMockNotificationRepositoryIface(ctrl)
		auditLog := mocks.NewMockLogger(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		request := &model.GrowthRequest{ID: requestID, CompanyID: companyID, Type: model.ServiceSEO, Status: model.GrowthPending}

		requestRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), tx, requestID).Return(request, nil)
		requestRepo.EXPECT().UpdateInTx(gomock.Any(), tx, request).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		auditLog.EXPECT().
			LogGrowthRequestUpdate(gomock.Any(), adminID, requestID, string(model.GrowthCompleted), gomock.Any()).
			Return(nil)
		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID, OwnerID: ownerID}, nil)
		notificationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) error {
				assert.Equal(t, ownerID, n.UserID)
				assert.Equal(t, model.NotificationGrowth, n.Type)
				return nil
			})

		svc := service.NewGrowthService(
			requestRepo,
			companyRepo,
			mocks.NewMockUserRepositoryIface(ctrl),
			service.NewNotificationService(notificationRepo),
			auditLog,
			nil,
		)

		updated, err := svc.UpdateStatus(context.Background(), requestID, adminID, model.GrowthCompleted)
		assert.NoError(t, err)
		assert.Equal(t, model.GrowthCompleted, updated.Status)
	})

	t.Run("terminal requests cannot transition again", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		tx := mocks.NewMockTransaction(ctrl)

		request := &model.GrowthRequest{ID: requestID, Status: model.GrowthCancelled}

		requestRepo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		requestRepo.EXPECT().FindByIDForUpdate(gomock.Any(), tx, requestID).Return(request, nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)

		_, err := svc.UpdateStatus(context.Background(), requestID, adminID, model.GrowthCompleted)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("only terminal statuses are accepted as input", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)

		svc := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)

		_, err := svc.UpdateStatus(context.Background(), requestID, adminID, model.GrowthPending)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListGrowthRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty and ALL filters return everything", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)

		requestRepo.EXPECT().List(gomock.Any(), nil).Return([]*model.GrowthRequest{}, nil).Times(2)

		svc := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)

		_, err := svc.List(context.Background(), "")
		assert.NoError(t, err)
		_, err = svc.List(context.Background(), "all")
		assert.NoError(t, err)
	})

	t.Run("status filter is forwarded", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)

		pending := model.GrowthPending
		requestRepo.EXPECT().List(gomock.Any(), &pending).Return([]*model.GrowthRequest{}, nil)

		svc := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)

		_, err := svc.List(context.Background(), "pending")
		assert.NoError(t, err)
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)

		svc := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)

		_, err := svc.List(context.Background(), "bogus")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
