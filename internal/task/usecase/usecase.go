package usecase

import (
	"context"
	"time"

	"officeflow-backend/internal/task/domain"
)

// CreateTaskInput carries caller-supplied task fields.
type CreateTaskInput struct {
	Name              string
	Type              string
	Category          string
	Priority          int
	Description       string
	ScheduledFor      *time.Time
	CreatedBy         uint
	Parameters        map[string]any
	IsRecurring       bool
	RecurrencePattern string
	Tags              []string
}

// TaskUsecase defines task CRUD and synchronous execution.
type TaskUsecase interface {
	CreateTask(input CreateTaskInput) (*domain.Task, error)
	GetTaskByID(id uint) (*domain.Task, error)
	// ListTasks filters by status or category when set; both empty lists all.
	ListTasks(status, category string) ([]*domain.Task, error)
	DeleteTask(id uint) (bool, error)

	// Run executes the task synchronously and persists its terminal state.
	Run(ctx context.Context, id uint) (*domain.Task, error)
}
