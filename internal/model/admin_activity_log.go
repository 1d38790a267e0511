// internal/model/admin_activity_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AdminActivityLog is an append-only audit entry written for every
// privileged mutation. Rows are never updated or deleted.
type AdminActivityLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AdminID    uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	Action     string    `json:"action" gorm:"type:text;not null"`
	TargetType string    `json:"target_type" gorm:"type:text;not null"`
	TargetID   string    `json:"target_id" gorm:"type:text;not null"`
	Details    JSONMap   `json:"details" gorm:"type:jsonb"`
	RequestID  string    `json:"request_id" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AdminActivityLog
func (AdminActivityLog) TableName() string {
	return "admin_activity_logs"
}

// Constants for AdminActivityLog action types
const (
	ActionApproveVerification = "approve_verification"
	ActionRejectVerification  = "reject_verification"
	ActionGrowthStatusUpdate  = "growth_request_status_update"
	ActionResetPartnerProfile = "reset_partner_profile"
)

// Constants for AdminActivityLog target types
const (
	TargetCompany       = "company"
	TargetGrowthRequest = "growth_request"
	TargetUser          = "user"
)

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
