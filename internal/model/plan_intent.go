// internal/model/plan_intent.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanIntent is a server-side draft of a plan choice made before the partner
// has a company record (straight off the pricing page). Step 1 of onboarding
// folds the intent into the company and removes the draft, so client-local
// storage is never the source of truth.
type PlanIntent struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Tier      PlanTier     `gorm:"type:text;not null" json:"tier"`
	Cycle     BillingCycle `gorm:"type:text;not null" json:"cycle"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
