package repository

import (
	"errors"
	"time"

	"officeflow-backend/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM.
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository.
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(id uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	if task.ID == 0 {
		return domain.ErrMissingID
	}
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&domain.Task{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *gormTaskRepository) FindAll() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByStatus(status domain.TaskStatus) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByCategory(category string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("category = ?", category).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}
