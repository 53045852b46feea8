package repository

import (
	"sort"
	"sync"
	"time"

	"officeflow-backend/internal/project/domain"
)

// memoryProjectRepository is a mutex-guarded in-memory ProjectRepository with
// the same contract as the GORM implementation. Used by tests.
type memoryProjectRepository struct {
	mu       sync.RWMutex
	nextID   uint
	projects map[uint]domain.Project
}

func NewMemoryProjectRepository() ProjectRepository {
	return &memoryProjectRepository{projects: make(map[uint]domain.Project)}
}

func (r *memoryProjectRepository) Create(project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	project.ID = r.nextID
	project.CreatedAt = time.Now()
	project.UpdatedAt = time.Now()
	r.projects[project.ID] = *project
	return nil
}

func (r *memoryProjectRepository) FindByID(id uint) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *memoryProjectRepository) Update(project *domain.Project) error {
	if project.ID == 0 {
		return domain.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project.UpdatedAt = time.Now()
	r.projects[project.ID] = *project
	return nil
}

func (r *memoryProjectRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return false, nil
	}
	delete(r.projects, id)
	return true, nil
}

func (r *memoryProjectRepository) FindAll() ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		project := p
		projects = append(projects, &project)
	}
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID > projects[j].ID
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}
