// internal/repository/growth_request.go
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

type GrowthRequestRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	FindByID(ctx context.Context, id uuid.UUID) (*model.GrowthRequest, error)
	List(ctx context.Context, status *model.GrowthRequestStatus) ([]*model.GrowthRequest, error)
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*model.GrowthRequest, error)

	CreateInTx(ctx context.Context, tx Transaction, request *model.GrowthRequest) error
	FindByIDForUpdate(ctx context.Context, tx Transaction, id uuid.UUID) (*model.GrowthRequest, error)
	UpdateInTx(ctx context.Context, tx Transaction, request *model.GrowthRequest) error
}

type GrowthRequestRepository struct {
	db *gorm.DB
}

func NewGrowthRequestRepository(db *gorm.DB) *GrowthRequestRepository {
	return &GrowthRequestRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *GrowthRequestRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *GrowthRequestRepository) CreateInTx(ctx context.Context, tx Transaction, request *model.GrowthRequest) error {
	db, err := txDB(tx)
	if err != nil {
		return err
	}

	if result := db.WithContext(ctx).Create(request); result.Error != nil {
		return fmt.Errorf("failed to create growth request: %w", result.Error)
	}
	return nil
}

func (r *GrowthRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.GrowthRequest, error) {
	var request model.GrowthRequest
	result := r.db.WithContext(ctx).Preload("Company").First(&request, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find growth request: %w", result.Error)
	}
	return &request, nil
}

// List returns growth requests joined with company identity for admin
// review. A nil status returns all requests. The full result set is
// acceptable at this scale.
func (r *GrowthRequestRepository) List(ctx context.Context, status *model.GrowthRequestStatus) ([]*model.GrowthRequest, error) {
	var requests []*model.GrowthRequest

	query := r.db.WithContext(ctx).Preload("Company")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	result := query.Order("created_at DESC").Find(&requests)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list growth requests: %w", result.Error)
	}
	return requests, nil
}

func (r *GrowthRequestRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*model.GrowthRequest, error) {
	var requests []*model.GrowthRequest
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&requests)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find growth requests: %w", result.Error)
	}
	return requests, nil
}

func (r *GrowthRequestRepository) FindByIDForUpdate(ctx context.Context, tx Transaction, id uuid.UUID) (*model.GrowthRequest, error) {
	db, err := txDB(tx)
	if err != nil {
		return nil, err
	}

	var request model.GrowthRequest
	result := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to lock growth request: %w", result.Error)
	}
	return &request, nil
}

func (r *GrowthRequestRepository) UpdateInTx(ctx context.Context, tx Transaction, request *model.GrowthRequest) error {
	db, err := txDB(tx)
	if err != nil {
		return err
	}

	if result := db.WithContext(ctx).Save(request); result.Error != nil {
		return fmt.Errorf("failed to update growth request: %w", result.Error)
	}
	return nil
}
