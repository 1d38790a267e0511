// internal/model/growth_request.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type GrowthServiceType string

const (
	ServiceSEO GrowthServiceType = "SEO"
	ServiceAds GrowthServiceType = "ADS"
)

type GrowthRequestStatus string

const (
	GrowthPending   GrowthRequestStatus = "PENDING"
	GrowthCompleted GrowthRequestStatus = "COMPLETED"
	GrowthCancelled GrowthRequestStatus = "CANCELLED"
)

// Terminal reports whether no further status transitions are allowed.
func (s GrowthRequestStatus) Terminal() bool {
	return s == GrowthCompleted || s == GrowthCancelled
}

// GrowthRequest is a partner-initiated request for an SEO or Ads add-on
// service. One row per requested service type per submission; rows are never
// deleted, only transitioned.
type GrowthRequest struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID           `gorm:"type:uuid;not null;index" json:"company_id"`
	Type      GrowthServiceType   `gorm:"type:growth_service_type;not null" json:"type"`
	Details   JSONMap             `gorm:"type:jsonb" json:"details"`
	Status    GrowthRequestStatus `gorm:"type:growth_request_status;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// ParseGrowthService maps a submitted service identifier to a known service
// type. Identifiers are matched case-insensitively; unknown values return
// false and are skipped by the caller.
func ParseGrowthService(s string) (GrowthServiceType, bool) {
	switch GrowthServiceType(strings.ToUpper(strings.TrimSpace(s))) {
	case ServiceSEO:
		return ServiceSEO, true
	case ServiceAds:
		return ServiceAds, true
	default:
		return "", false
	}
}
