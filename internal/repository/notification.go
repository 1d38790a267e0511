// internal/repository/notification.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	result := r.db.WithContext(ctx).Create(notification)
	if result.Error != nil {
		return fmt.Errorf("failed to create notification: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	result := r.db.WithContext(ctx).First(&notification, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find notification: %w", result.Error)
	}
	return &notification, nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	var notifications []*model.Notification
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", result.Error)
	}
	return notifications, nil
}

func (r *NotificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	result := r.db.WithContext(ctx).Save(notification)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	return nil
}
