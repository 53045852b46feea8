package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"officeflow-backend/internal/task/domain"
	"officeflow-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// defaultUserID stands in for an authenticated user; there is no auth model.
const defaultUserID = 1

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Name              string         `json:"name" binding:"required"`
	Type              string         `json:"type" binding:"required"`
	Category          string         `json:"category" binding:"required"`
	Priority          int            `json:"priority"`
	Description       string         `json:"description"`
	ScheduledFor      *string        `json:"scheduled_for"`
	CreatedBy         uint           `json:"created_by"`
	Parameters        map[string]any `json:"parameters"`
	IsRecurring       bool           `json:"is_recurring"`
	RecurrencePattern string         `json:"recurrence_pattern"`
	Tags              []string       `json:"tags"`
}

// ListTasks returns all tasks, optionally filtered by status or category.
// GET /api/tasks?status=pending&category=email
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.ListTasks(c.Query("status"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// CreateTask creates a new task.
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateTaskInput{
		Name:              req.Name,
		Type:              req.Type,
		Category:          req.Category,
		Priority:          req.Priority,
		Description:       req.Description,
		CreatedBy:         req.CreatedBy,
		Parameters:        req.Parameters,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
		Tags:              req.Tags,
	}
	if input.CreatedBy == 0 {
		input.CreatedBy = defaultUserID
	}
	if req.ScheduledFor != nil && *req.ScheduledFor != "" {
		if t, err := time.Parse(time.RFC3339, *req.ScheduledFor); err == nil {
			input.ScheduledFor = &t
		}
	}

	task, err := h.taskUsecase.CreateTask(input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTaskByID returns a specific task.
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskUsecase.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// RunTask executes a task synchronously and returns its terminal state.
// POST /api/tasks/:id/run
func (h *TaskHandler) RunTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskUsecase.Run(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"task":   task,
	})
}

// DeleteTask deletes a task.
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.taskUsecase.DeleteTask(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Task deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
