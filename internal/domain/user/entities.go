package user

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleUser     Role = "user"
	RoleVerifier Role = "verifier"
	RoleAdmin    Role = "admin"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleVerifier, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`

	FullName string `gorm:"size:120" json:"full_name"`
	Email    string `gorm:"size:120;uniqueIndex:ux_users_email" json:"email"`

	Role Role `gorm:"type:enum('user','verifier','admin');default:'user'" json:"role"`

	// IsActive gates every operation; IsVerified is the identity-check flag
	// set after the verifier reviews the account's documents.
	IsActive   bool `gorm:"default:true" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
