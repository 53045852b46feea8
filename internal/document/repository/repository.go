package repository

import "officeflow-backend/internal/document/domain"

// DocumentRepository defines the interface for document data access. Lists
// are ordered by created_at descending.
type DocumentRepository interface {
	Create(document *domain.Document) error
	// FindByID returns nil (no error) when the document is absent.
	FindByID(id uint) (*domain.Document, error)
	// Update fails with domain.ErrMissingID when the document has no id.
	Update(document *domain.Document) error
	Delete(id uint) (bool, error)
	FindAll() ([]*domain.Document, error)
}
