package repository

import (
	"errors"
	"time"

	"officeflow-backend/internal/document/domain"

	"gorm.io/gorm"
)

type gormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GORM-based DocumentRepository.
func NewGormDocumentRepository(db *gorm.DB) DocumentRepository {
	return &gormDocumentRepository{db: db}
}

func (r *gormDocumentRepository) Create(document *domain.Document) error {
	document.CreatedAt = time.Now()
	document.UpdatedAt = time.Now()
	return r.db.Create(document).Error
}

func (r *gormDocumentRepository) FindByID(id uint) (*domain.Document, error) {
	var document domain.Document
	err := r.db.First(&document, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *gormDocumentRepository) Update(document *domain.Document) error {
	if document.ID == 0 {
		return domain.ErrMissingID
	}
	document.UpdatedAt = time.Now()
	return r.db.Save(document).Error
}

func (r *gormDocumentRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&domain.Document{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *gormDocumentRepository) FindAll() ([]*domain.Document, error) {
	var documents []*domain.Document
	err := r.db.Order("created_at DESC").Find(&documents).Error
	return documents, err
}
