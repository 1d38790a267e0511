// internal/repository/subscription.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepositoryIface interface {
	Upsert(ctx context.Context, subscription *model.Subscription) error
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) (*model.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Upsert creates the subscription row for a company or updates it in place.
// The billing processor may replay status callbacks, so this has to be safe
// to call more than once.
func (r *SubscriptionRepository) Upsert(ctx context.Context, subscription *model.Subscription) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tier", "cycle", "status", "external_ref", "current_period_end", "updated_at",
		}),
	}).Create(subscription)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) (*model.Subscription, error) {
	var subscription model.Subscription
	result := r.db.WithContext(ctx).Where("company_id = ?", companyID).First(&subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find subscription: %w", result.Error)
	}
	return &subscription, nil
}
