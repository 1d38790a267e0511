// internal/model/company.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
)

// Onboarding step bounds. Step 0 means the wizard has not been started;
// OnboardingComplete marks structural completion of the profile.
const (
	OnboardingNotStarted = 0
	OnboardingComplete   = 4
)

type PlanTier string

const (
	PlanBasic   PlanTier = "basic"
	PlanPro     PlanTier = "pro"
	PlanPremium PlanTier = "premium"
)

type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
)

// Company is the persisted business profile and lifecycle state for a
// partner. One row per partner user.
type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`

	// Structural profile, filled in across onboarding steps 1-3.
	Name         string      `gorm:"type:text;not null" json:"name"`
	Category     string      `gorm:"type:text;not null" json:"category"`
	Location     string      `gorm:"type:text;not null" json:"location"`
	ContactEmail string      `gorm:"type:text;not null" json:"contact_email"`
	Description  string      `gorm:"type:text" json:"description"`
	Tagline      string      `gorm:"type:text" json:"tagline"`
	MediaURLs    StringArray `gorm:"type:text[]" json:"media_urls"`

	// OnboardingStep only moves forward; it is reset solely by deleting the
	// whole record (admin "reset partner profile").
	OnboardingStep int `gorm:"not null;default:0" json:"onboarding_step"`

	VerificationStatus VerificationStatus `gorm:"type:verification_status;not null;default:'unverified'" json:"verification_status"`

	// Verification evidence. CVRNumber and at least one permit document are
	// required before the status may move to pending.
	CVRNumber       string      `gorm:"type:text" json:"cvr_number"`
	LegalName       string      `gorm:"type:text" json:"legal_name"`
	BusinessAddress string      `gorm:"type:text" json:"business_address"`
	PermitType      string      `gorm:"type:text" json:"permit_type"`
	PermitIssuer    string      `gorm:"type:text" json:"permit_issuer"`
	PermitDocuments StringArray `gorm:"type:text[]" json:"permit_documents"`

	VerificationNotes string     `gorm:"type:text" json:"verification_notes"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	VerifiedByID      *uuid.UUID `gorm:"type:uuid" json:"verified_by_id,omitempty"`

	// Tentative plan choice recorded before payment. A Subscription row is
	// only created by the billing webhook once payment succeeds.
	SelectedPlanTier  *PlanTier     `gorm:"type:text" json:"selected_plan_tier,omitempty"`
	SelectedPlanCycle *BillingCycle `gorm:"type:text" json:"selected_plan_cycle,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner        User          `gorm:"foreignKey:OwnerID" json:"-"`
	Subscription *Subscription `gorm:"foreignKey:CompanyID" json:"subscription,omitempty"`
}

// Verified reports the derived boolean exposed at the API boundary. The enum
// is the single source of truth; the flag is never stored.
func (c *Company) Verified() bool {
	return c.VerificationStatus == VerificationVerified
}

// HasSelectedPlan reports whether the partner recorded a plan choice.
func (c *Company) HasSelectedPlan() bool {
	return c.SelectedPlanTier != nil
}

// HasEvidence reports whether the minimum verification evidence is present.
func (c *Company) HasEvidence() bool {
	return c.CVRNumber != "" && len(c.PermitDocuments) > 0
}

// StringArray is a custom type that implements the sql.Scanner and
// driver.Valuer interfaces for postgres text[] columns.
type StringArray []string

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		if b, ok := value.([]byte); ok {
			str = string(b)
		} else {
			return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, a)
		}
	}

	trimmed := strings.Trim(str, "{}")
	if trimmed == "" {
		*a = []string{}
		return nil
	}
	*a = strings.Split(trimmed, ",")
	return nil
}

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(a, ",") + "}", nil
}
