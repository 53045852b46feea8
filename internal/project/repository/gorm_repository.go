package repository

import (
	"errors"
	"time"

	"officeflow-backend/internal/project/domain"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository.
func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) Create(project *domain.Project) error {
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	return r.db.Create(project).Error
}

func (r *gormProjectRepository) FindByID(id uint) (*domain.Project, error) {
	var project domain.Project
	err := r.db.First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (r *gormProjectRepository) Update(project *domain.Project) error {
	if project.ID == 0 {
		return domain.ErrMissingID
	}
	project.UpdatedAt = time.Now()
	return r.db.Save(project).Error
}

func (r *gormProjectRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&domain.Project{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *gormProjectRepository) FindAll() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}
