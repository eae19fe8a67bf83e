package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Registration always assigns RoleUser; admin accounts are
// provisioned out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"` // stored lowercased
	Password  string         `gorm:"not null" json:"-"`                 // bcrypt hash, never serialized
	Name      string         `gorm:"not null" json:"name"`
	Role      string         `gorm:"not null;default:'user'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
