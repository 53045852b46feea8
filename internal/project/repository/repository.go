package repository

import "officeflow-backend/internal/project/domain"

// ProjectRepository defines the interface for project data access. Lists are
// ordered by created_at descending.
type ProjectRepository interface {
	Create(project *domain.Project) error
	// FindByID returns nil (no error) when the project is absent.
	FindByID(id uint) (*domain.Project, error)
	// Update fails with domain.ErrMissingID when the project has no id.
	Update(project *domain.Project) error
	Delete(id uint) (bool, error)
	FindAll() ([]*domain.Project, error)
}
