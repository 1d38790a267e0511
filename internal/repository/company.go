// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindPendingVerification(ctx context.Context) ([]*model.Company, error)

	// Locking variants run inside the given transaction and take a row-level
	// lock, serializing concurrent mutations of the same company.
	FindByIDForUpdate(ctx context.Context, tx Transaction, id uuid.UUID) (*model.Company, error)
	FindByOwnerIDForUpdate(ctx context.Context, tx Transaction, ownerID uuid.UUID) (*model.Company, error)
	CreateInTx(ctx context.Context, tx Transaction, company *model.Company) error
	UpdateInTx(ctx context.Context, tx Transaction, company *model.Company) error
	DeleteInTx(ctx context.Context, tx Transaction, id uuid.UUID) error
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *CompanyRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		return fmt.Errorf("failed to create company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).Preload("Subscription").First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).Preload("Subscription").Where("owner_id = ?", ownerID).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Save(company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	return nil
}

// FindPendingVerification returns companies awaiting an admin decision,
// oldest submission first.
func (r *CompanyRepository) FindPendingVerification(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Where("verification_status = ?", model.VerificationPending).
		Order("updated_at ASC").
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pending companies: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) FindByIDForUpdate(ctx context.Context, tx Transaction, id uuid.UUID) (*model.Company, error) {
	db, err := txDB(tx)
	if err != nil {
		return nil, err
	}

	var company model.Company
	result := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to lock company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByOwnerIDForUpdate(ctx context.Context, tx Transaction, ownerID uuid.UUID) (*model.Company, error) {
	db, err := txDB(tx)
	if err != nil {
		return nil, err
	}

	var company model.Company
	result := db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ?", ownerID).
		First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to lock company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) CreateInTx(ctx context.Context, tx Transaction, company *model.Company) error {
	db, err := txDB(tx)
	if err != nil {
		return err
	}

	if result := db.WithContext(ctx).Create(company); result.Error != nil {
		return fmt.Errorf("failed to create company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) UpdateInTx(ctx context.Context, tx Transaction, company *model.Company) error {
	db, err := txDB(tx)
	if err != nil {
		return err
	}

	if result := db.WithContext(ctx).Save(company); result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) DeleteInTx(ctx context.Context, tx Transaction, id uuid.UUID) error {
	db, err := txDB(tx)
	if err != nil {
		return err
	}

	if result := db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id); result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}
	return nil
}
