// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleConsumer UserRole = "CONSUMER"
	RolePartner  UserRole = "PARTNER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"type:text;not null" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	Role         UserRole  `gorm:"type:user_role;not null;default:'CONSUMER'" json:"role"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
