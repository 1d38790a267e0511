// internal/repository/plan_intent.go
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

type PlanIntentRepositoryIface interface {
	Upsert(ctx context.Context, intent *model.PlanIntent) error
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.PlanIntent, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type PlanIntentRepository struct {
	db *gorm.DB
}

func NewPlanIntentRepository(db *gorm.DB) *PlanIntentRepository {
	return &PlanIntentRepository{db: db}
}

// Upsert records the draft plan choice for a user, replacing any earlier
// choice. Re-selecting a plan is always allowed before payment.
func (r *PlanIntentRepository) Upsert(ctx context.Context, intent *model.PlanIntent) error {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "cycle", "updated_at"}),
	}).Create(intent)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert plan intent: %w", result.Error)
	}
	return nil
}

func (r *PlanIntentRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.PlanIntent, error) {
	var intent model.PlanIntent
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&intent)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan intent: %w", result.Error)
	}
	return &intent, nil
}

func (r *PlanIntentRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.PlanIntent{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete plan intent: %w", result.Error)
	}
	return nil
}
