// internal/repository/admin_activity_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.AdminActivityLog) error
	Query(ctx context.Context, params ActivityLogQueryParams) ([]model.AdminActivityLog, int64, error)
}

// ActivityLogRepository handles database operations for the admin audit
// trail. Entries are append-only: there is deliberately no update or delete.
type ActivityLogRepository struct {
	db *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *ActivityLogRepository) Create(ctx context.Context, entry *model.AdminActivityLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create admin activity log: %w", result.Error)
	}

	return nil
}

// ActivityLogQueryParams holds parameters for querying audit logs
type ActivityLogQueryParams struct {
	AdminID    *uuid.UUID
	Action     string
	TargetType string
	TargetID   string
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// Query retrieves audit logs based on the provided query parameters
func (r *ActivityLogRepository) Query(ctx context.Context, params ActivityLogQueryParams) ([]model.AdminActivityLog, int64, error) {
	var entries []model.AdminActivityLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AdminActivityLog{})

	// Apply filters
	if params.AdminID != nil {
		query = query.Where("admin_id = ?", *params.AdminID)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.TargetType != "" {
		query = query.Where("target_type = ?", params.TargetType)
	}
	if params.TargetID != "" {
		query = query.Where("target_id = ?", params.TargetID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("created_at >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("created_at <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count admin activity logs: %w", err)
	}

	// Apply pagination
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("created_at DESC").Find(&entries)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query admin activity logs: %w", result.Error)
	}

	return entries, count, nil
}
