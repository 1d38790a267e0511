// internal/repository/repository.go
package repository

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx *gorm.DB
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	return t.tx.Commit().Error
}

// Rollback reverts the transaction.
func (t *gormTransaction) Rollback() error {
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// txDB unwraps the gorm handle from a Transaction so repository methods can
// run statements inside it.
func txDB(tx Transaction) (*gorm.DB, error) {
	gt, ok := tx.(*gormTransaction)
	if !ok {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	return gt.tx, nil
}
