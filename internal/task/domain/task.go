package domain

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// Terminal reports whether no further transition can leave the status.
func (s TaskStatus) Terminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrMissingID    = errors.New("task id is required for update")
	ErrUnknownKind  = errors.New("unknown task category/type")
)

// Task is the unit of work. Category and Type together form the dispatch
// key; Parameters are opaque to the store and interpreted only by the
// selected operation handler. Scheduling and recurrence fields are persisted
// metadata only, no scheduler acts on them.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Type        string     `json:"type" gorm:"not null"`
	Category    string     `json:"category" gorm:"not null;index"`
	Status      TaskStatus `json:"status" gorm:"default:pending;index"`
	Priority    int        `json:"priority" gorm:"default:1"` // 1=low, 2=medium, 3=high
	Description string     `json:"description"`

	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedBy    uint       `json:"created_by"`

	Parameters datatypes.JSONMap `json:"parameters"`
	Result     datatypes.JSONMap `json:"result"`
	Error      *string           `json:"error,omitempty"`

	IsRecurring       bool                        `json:"is_recurring" gorm:"default:false"`
	RecurrencePattern string                      `json:"recurrence_pattern,omitempty"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
}
