package usecase

import (
	"officeflow-backend/internal/project/domain"
	"officeflow-backend/internal/project/repository"

	"gorm.io/datatypes"
)

// CreateProjectInput carries caller-supplied project fields.
type CreateProjectInput struct {
	Name        string
	Description string
	CreatedBy   uint
	Icon        string
	Tags        []string
	Metadata    map[string]any
}

// UpdateProjectInput carries optional field updates; nil means unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Icon        *string
	Tags        []string
	Metadata    map[string]any
}

// ProjectUsecase defines project CRUD and membership bookkeeping. Membership
// edits report false (without error) when the project is absent or the edit
// is a no-op; ids are never validated against the task/document stores.
type ProjectUsecase interface {
	CreateProject(input CreateProjectInput) (*domain.Project, error)
	GetProjectByID(id uint) (*domain.Project, error)
	ListProjects() ([]*domain.Project, error)
	UpdateProject(id uint, input UpdateProjectInput) (*domain.Project, error)
	DeleteProject(id uint) (bool, error)

	AddTask(projectID, taskID uint) (bool, error)
	RemoveTask(projectID, taskID uint) (bool, error)
	AddDocument(projectID, documentID uint) (bool, error)
	RemoveDocument(projectID, documentID uint) (bool, error)
}

type projectUsecase struct {
	projectRepo repository.ProjectRepository
}

func NewProjectUsecase(projectRepo repository.ProjectRepository) ProjectUsecase {
	return &projectUsecase{projectRepo: projectRepo}
}

func (u *projectUsecase) CreateProject(input CreateProjectInput) (*domain.Project, error) {
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
		Icon:        input.Icon,
		Tags:        datatypes.JSONSlice[string](input.Tags),
		Metadata:    datatypes.JSONMap(input.Metadata),
		TaskIDs:     datatypes.JSONSlice[uint]{},
		DocumentIDs: datatypes.JSONSlice[uint]{},
	}
	if err := u.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) GetProjectByID(id uint) (*domain.Project, error) {
	project, err := u.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (u *projectUsecase) ListProjects() ([]*domain.Project, error) {
	return u.projectRepo.FindAll()
}

func (u *projectUsecase) UpdateProject(id uint, input UpdateProjectInput) (*domain.Project, error) {
	project, err := u.GetProjectByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Icon != nil {
		project.Icon = *input.Icon
	}
	if input.Tags != nil {
		project.Tags = datatypes.JSONSlice[string](input.Tags)
	}
	if input.Metadata != nil {
		project.Metadata = datatypes.JSONMap(input.Metadata)
	}

	if err := u.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) DeleteProject(id uint) (bool, error) {
	return u.projectRepo.Delete(id)
}

func (u *projectUsecase) AddTask(projectID, taskID uint) (bool, error) {
	return u.edit(projectID, func(p *domain.Project) bool {
		if contains(p.TaskIDs, taskID) {
			return false
		}
		p.TaskIDs = append(p.TaskIDs, taskID)
		return true
	})
}

func (u *projectUsecase) RemoveTask(projectID, taskID uint) (bool, error) {
	return u.edit(projectID, func(p *domain.Project) bool {
		next, removed := remove(p.TaskIDs, taskID)
		p.TaskIDs = next
		return removed
	})
}

func (u *projectUsecase) AddDocument(projectID, documentID uint) (bool, error) {
	return u.edit(projectID, func(p *domain.Project) bool {
		if contains(p.DocumentIDs, documentID) {
			return false
		}
		p.DocumentIDs = append(p.DocumentIDs, documentID)
		return true
	})
}

func (u *projectUsecase) RemoveDocument(projectID, documentID uint) (bool, error) {
	return u.edit(projectID, func(p *domain.Project) bool {
		next, removed := remove(p.DocumentIDs, documentID)
		p.DocumentIDs = next
		return removed
	})
}

// edit loads, applies the membership change and persists when it changed
// anything. The read-modify-write is not atomic against concurrent writers;
// the last persisted write wins.
func (u *projectUsecase) edit(projectID uint, apply func(*domain.Project) bool) (bool, error) {
	project, err := u.projectRepo.FindByID(projectID)
	if err != nil {
		return false, err
	}
	if project == nil {
		return false, nil
	}
	if !apply(project) {
		return false, nil
	}
	if err := u.projectRepo.Update(project); err != nil {
		return false, err
	}
	return true, nil
}

func contains(ids datatypes.JSONSlice[uint], id uint) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func remove(ids datatypes.JSONSlice[uint], id uint) (datatypes.JSONSlice[uint], bool) {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...), true
		}
	}
	return ids, false
}
