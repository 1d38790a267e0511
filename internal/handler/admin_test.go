package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bridgeops/partnerflow/internal/handler"
	"github.com/bridgeops/partnerflow/internal/mocks"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGrowthRequestsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()

	t.Run("rows carry the owning company's identity", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)
		requestRepo.EXPECT().
			List(gomock.Any(), nil).
			Return([]*model.GrowthRequest{
				{
					ID:        uuid.New(),
					CompanyID: companyID,
					Type:      model.ServiceSEO,
					Status:    model.GrowthPending,
					Company:   model.Company{ID: companyID, Name: "Harbor Tours"},
				},
			}, nil)

		growthService := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)
		h := handler.NewAdminHandler(nil, growthService)

		rec := httptest.NewRecorder()
		h.GrowthRequestsHandler(rec, httptest.NewRequest(http.MethodGet, "/admin/growth-requests", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var payload struct {
			Ok       bool             `json:"ok"`
			Requests []map[string]any `json:"requests"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.True(t, payload.Ok)
		if assert.Len(t, payload.Requests, 1) {
			assert.Equal(t, "Harbor Tours", payload.Requests[0]["company_name"])
			assert.Equal(t, companyID.String(), payload.Requests[0]["company_id"])
		}
	})

	t.Run("unknown status filter is a bad request", func(t *testing.T) {
		requestRepo := mocks.NewMockGrowthRequestRepositoryIface(ctrl)

		growthService := service.NewGrowthService(requestRepo, nil, nil, nil, nil, nil)
		h := handler.NewAdminHandler(nil, growthService)

		rec := httptest.NewRecorder()
		h.GrowthRequestsHandler(rec, httptest.NewRequest(http.MethodGet, "/admin/growth-requests?status=bogus", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
