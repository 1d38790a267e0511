package service

import (
	"context"
	"fmt"

	"github.com/bridgeops/partnerflow/internal/domain"
	"github.com/bridgeops/partnerflow/internal/model"
	"github.com/bridgeops/partnerflow/internal/repository"
	"github.com/google/uuid"
)

// NotificationService creates and serves in-app notification rows. Delivery
// beyond the row itself (email) is handled by the caller, best effort.
type NotificationService struct {
	repo repository.NotificationRepositoryIface
}

func NewNotificationService(repo repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify creates a notification row for a user.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, typ model.NotificationType, title, message string) (*model.Notification, error) {
	notification := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    typ,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	return notification, nil
}

// ListForUser returns all notifications for a user, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	return s.repo.FindByUser(ctx, userID)
}

// MarkRead flags a notification as read. Users may only touch their own
// notifications.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != userID {
		return domain.ErrForbidden
	}

	if notification.Read {
		return nil
	}

	notification.Read = true
	if err := s.repo.Update(ctx, notification); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}

	return nil
}
