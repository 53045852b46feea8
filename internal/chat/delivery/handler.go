package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"officeflow-backend/internal/chat/usecase"
	"officeflow-backend/pkg/llm"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{chatUsecase: chatUsecase}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// GeneralChat answers a free-form message.
// POST /api/chat
func (h *ChatHandler) GeneralChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.chatUsecase.GeneralChat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "LLM is not configured. Set an API key in the environment."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// ProjectChat answers a message grounded in a project's context.
// POST /api/chat/projects/:id
func (h *ChatHandler) ProjectChat(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.chatUsecase.ChatWithProject(c.Request.Context(), uint(id), req.Message)
	if result.Status == "error" {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
