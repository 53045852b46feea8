package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrMissingID       = errors.New("project id is required for update")
)

// Project groups task and document ids. Membership is purely referential:
// listed ids are never validated against the task/document stores, so
// readers must tolerate dangling references.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   uint      `json:"created_by"`
	Icon        string    `json:"icon,omitempty"`

	Tags     datatypes.JSONSlice[string] `json:"tags"`
	Metadata datatypes.JSONMap           `json:"metadata"`

	TaskIDs     datatypes.JSONSlice[uint] `json:"tasks" gorm:"column:tasks"`
	DocumentIDs datatypes.JSONSlice[uint] `json:"documents" gorm:"column:documents"`

	ContextID string `json:"context_id,omitempty"`
}
