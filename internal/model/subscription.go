// internal/model/subscription.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is a billing subscription created by the payment processor
// callback once a checkout completes. This service only consumes the status
// signal; processor integration lives elsewhere.
type Subscription struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID        uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"company_id"`
	Tier             PlanTier           `gorm:"type:text;not null" json:"tier"`
	Cycle            BillingCycle       `gorm:"type:text;not null" json:"cycle"`
	Status           SubscriptionStatus `gorm:"type:subscription_status;not null" json:"status"`
	ExternalRef      string             `gorm:"type:text" json:"external_ref"`
	CurrentPeriodEnd *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
