// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationVerification NotificationType = "verification"
	NotificationGrowth       NotificationType = "growth"
	NotificationBilling      NotificationType = "billing"
)

// Notification is created as a side effect of actions that affect a partner
// (verification decision, growth request status change, subscription
// updates). Delivery beyond the row itself is best effort.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string           `gorm:"type:text;not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:notification_type;not null" json:"type"`
	Read      bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
