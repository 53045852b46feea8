package repository

import (
	"sort"
	"sync"
	"time"

	"officeflow-backend/internal/task/domain"
)

// memoryTaskRepository is a mutex-guarded in-memory TaskRepository. It backs
// tests and keeps the same contract as the GORM implementation.
type memoryTaskRepository struct {
	mu     sync.RWMutex
	nextID uint
	tasks  map[uint]domain.Task
}

func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{tasks: make(map[uint]domain.Task)}
}

func (r *memoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepository) FindByID(id uint) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *memoryTaskRepository) Update(task *domain.Task) error {
	if task.ID == 0 {
		return domain.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *memoryTaskRepository) FindAll() ([]*domain.Task, error) {
	return r.filter(func(domain.Task) bool { return true }), nil
}

func (r *memoryTaskRepository) FindByStatus(status domain.TaskStatus) ([]*domain.Task, error) {
	return r.filter(func(t domain.Task) bool { return t.Status == status }), nil
}

func (r *memoryTaskRepository) FindByCategory(category string) ([]*domain.Task, error) {
	return r.filter(func(t domain.Task) bool { return t.Category == category }), nil
}

func (r *memoryTaskRepository) filter(keep func(domain.Task) bool) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if keep(t) {
			task := t
			tasks = append(tasks, &task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}
