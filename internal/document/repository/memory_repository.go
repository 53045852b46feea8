package repository

import (
	"sort"
	"sync"
	"time"

	"officeflow-backend/internal/document/domain"
)

// memoryDocumentRepository is a mutex-guarded in-memory DocumentRepository
// with the same contract as the GORM implementation. Used by tests.
type memoryDocumentRepository struct {
	mu        sync.RWMutex
	nextID    uint
	documents map[uint]domain.Document
}

func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{documents: make(map[uint]domain.Document)}
}

func (r *memoryDocumentRepository) Create(document *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	document.ID = r.nextID
	document.CreatedAt = time.Now()
	document.UpdatedAt = time.Now()
	r.documents[document.ID] = *document
	return nil
}

func (r *memoryDocumentRepository) FindByID(id uint) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	document, ok := r.documents[id]
	if !ok {
		return nil, nil
	}
	return &document, nil
}

func (r *memoryDocumentRepository) Update(document *domain.Document) error {
	if document.ID == 0 {
		return domain.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	document.UpdatedAt = time.Now()
	r.documents[document.ID] = *document
	return nil
}

func (r *memoryDocumentRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.documents[id]; !ok {
		return false, nil
	}
	delete(r.documents, id)
	return true, nil
}

func (r *memoryDocumentRepository) FindAll() ([]*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	documents := make([]*domain.Document, 0, len(r.documents))
	for _, d := range r.documents {
		document := d
		documents = append(documents, &document)
	}
	sort.Slice(documents, func(i, j int) bool {
		if documents[i].CreatedAt.Equal(documents[j].CreatedAt) {
			return documents[i].ID > documents[j].ID
		}
		return documents[i].CreatedAt.After(documents[j].CreatedAt)
	})
	return documents, nil
}
