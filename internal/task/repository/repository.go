package repository

import "officeflow-backend/internal/task/domain"

// TaskRepository defines the interface for task data access. List results are
// ordered by created_at descending.
type TaskRepository interface {
	// Create inserts the task and assigns its id.
	Create(task *domain.Task) error

	// FindByID returns nil (no error) when the task is absent.
	FindByID(id uint) (*domain.Task, error)

	// Update persists the task and refreshes its updated_at timestamp.
	// Fails with domain.ErrMissingID when the task has no id yet.
	Update(task *domain.Task) error

	// Delete removes the task, reporting whether a row existed.
	Delete(id uint) (bool, error)

	FindAll() ([]*domain.Task, error)
	FindByStatus(status domain.TaskStatus) ([]*domain.Task, error)
	FindByCategory(category string) ([]*domain.Task, error)
}
