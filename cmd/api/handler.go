package api

import (
	chatDelivery "officeflow-backend/internal/chat/delivery"
	documentDelivery "officeflow-backend/internal/document/delivery"
	projectDelivery "officeflow-backend/internal/project/delivery"
	taskDelivery "officeflow-backend/internal/task/delivery"
	userDelivery "officeflow-backend/internal/user/delivery"
	"officeflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config          *config.Config
	taskHandler     *taskDelivery.TaskHandler
	projectHandler  *projectDelivery.ProjectHandler
	documentHandler *documentDelivery.DocumentHandler
	userHandler     *userDelivery.UserHandler
	chatHandler     *chatDelivery.ChatHandler
}

func NewHandler(
	cfg *config.Config,
	taskHandler *taskDelivery.TaskHandler,
	projectHandler *projectDelivery.ProjectHandler,
	documentHandler *documentDelivery.DocumentHandler,
	userHandler *userDelivery.UserHandler,
	chatHandler *chatDelivery.ChatHandler,
) *Handler {
	return &Handler{
		config:          cfg,
		taskHandler:     taskHandler,
		projectHandler:  projectHandler,
		documentHandler: documentHandler,
		userHandler:     userHandler,
		chatHandler:     chatHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
