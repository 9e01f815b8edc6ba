package models

import "gorm.io/gorm"

// User statuses. Users are never hard-deleted; a deletion only flips status.
const (
	UserStatusActive  = "active"
	UserStatusDeleted = "deleted"
)

// User represents a registered account. Email is stored lowercased and is
// unique across the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)"` // bcrypt hash; no json tag for security
	FirstName  string `json:"firstName" gorm:"type:varchar(100)" validate:"required,max=100"`
	LastName   string `json:"lastName" gorm:"type:varchar(100)" validate:"required,max=100"`
	Phone      string `json:"phone" gorm:"type:varchar(32)" validate:"required,max=32"`
	Status     string `json:"status" gorm:"type:varchar(16);default:active"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
