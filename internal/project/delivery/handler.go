package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"officeflow-backend/internal/project/domain"
	"officeflow-backend/internal/project/usecase"

	"github.com/gin-gonic/gin"
)

const defaultUserID = 1

// ProjectHandler handles project-related HTTP requests.
type ProjectHandler struct {
	projectUsecase usecase.ProjectUsecase
}

func NewProjectHandler(projectUsecase usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

type CreateProjectRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	CreatedBy   uint           `json:"created_by"`
	Icon        string         `json:"icon"`
	Tags        []string       `json:"tags"`
	Metadata    map[string]any `json:"metadata"`
}

type UpdateProjectRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Icon        *string        `json:"icon"`
	Tags        []string       `json:"tags"`
	Metadata    map[string]any `json:"metadata"`
}

// ListProjects returns all projects.
// GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUsecase.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(projects), "projects": projects})
}

// CreateProject creates a new project.
// POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := req.CreatedBy
	if createdBy == 0 {
		createdBy = defaultUserID
	}

	project, err := h.projectUsecase.CreateProject(usecase.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   createdBy,
		Icon:        req.Icon,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjectByID returns a specific project.
// GET /api/projects/:id
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectUsecase.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject updates project fields.
// PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectUsecase.UpdateProject(id, usecase.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project.
// DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.projectUsecase.DeleteProject(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Project deleted"})
}

// AddTask adds a task id to the project's membership list.
// POST /api/projects/:id/tasks/:taskId
func (h *ProjectHandler) AddTask(c *gin.Context) {
	h.membership(c, "taskId", h.projectUsecase.AddTask, "Task added to project")
}

// RemoveTask removes a task id from the project's membership list.
// DELETE /api/projects/:id/tasks/:taskId
func (h *ProjectHandler) RemoveTask(c *gin.Context) {
	h.membership(c, "taskId", h.projectUsecase.RemoveTask, "Task removed from project")
}

// AddDocument adds a document id to the project's membership list.
// POST /api/projects/:id/documents/:documentId
func (h *ProjectHandler) AddDocument(c *gin.Context) {
	h.membership(c, "documentId", h.projectUsecase.AddDocument, "Document added to project")
}

// RemoveDocument removes a document id from the project's membership list.
// DELETE /api/projects/:id/documents/:documentId
func (h *ProjectHandler) RemoveDocument(c *gin.Context) {
	h.membership(c, "documentId", h.projectUsecase.RemoveDocument, "Document removed from project")
}

func (h *ProjectHandler) membership(c *gin.Context, param string, op func(uint, uint) (bool, error), message string) {
	projectID, ok := parseParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := parseParam(c, param)
	if !ok {
		return
	}

	changed, err := op(projectID, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !changed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found or membership unchanged"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": message})
}

func parseParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
