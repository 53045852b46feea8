package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrUserNotFound = errors.New("user not found")

// User carries identity fields only; there is no authentication model and
// created_by references elsewhere are not validated against this table.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	IsAdmin   bool       `json:"is_admin" gorm:"default:false"`

	Preferences datatypes.JSONMap `json:"preferences"`
}
