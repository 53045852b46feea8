package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.taskHandler.ListTasks)
			tasks.POST("", h.taskHandler.CreateTask)
			tasks.GET("/:id", h.taskHandler.GetTaskByID)
			tasks.DELETE("/:id", h.taskHandler.DeleteTask)
			tasks.POST("/:id/run", h.taskHandler.RunTask)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", h.projectHandler.ListProjects)
			projects.POST("", h.projectHandler.CreateProject)
			projects.GET("/:id", h.projectHandler.GetProjectByID)
			projects.PUT("/:id", h.projectHandler.UpdateProject)
			projects.DELETE("/:id", h.projectHandler.DeleteProject)
			projects.POST("/:id/tasks/:taskId", h.projectHandler.AddTask)
			projects.DELETE("/:id/tasks/:taskId", h.projectHandler.RemoveTask)
			projects.POST("/:id/documents/:documentId", h.projectHandler.AddDocument)
			projects.DELETE("/:id/documents/:documentId", h.projectHandler.RemoveDocument)
		}

		documents := api.Group("/documents")
		{
			documents.GET("", h.documentHandler.ListDocuments)
			documents.POST("", h.documentHandler.UploadDocument)
			documents.GET("/:id", h.documentHandler.GetDocumentByID)
			documents.GET("/:id/download", h.documentHandler.DownloadDocument)
			documents.DELETE("/:id", h.documentHandler.DeleteDocument)
		}

		users := api.Group("/users")
		{
			users.GET("", h.userHandler.ListUsers)
			users.POST("", h.userHandler.CreateUser)
			users.GET("/:id", h.userHandler.GetUserByID)
		}

		chat := api.Group("/chat")
		{
			chat.POST("", h.chatHandler.GeneralChat)
			chat.POST("/projects/:id", h.chatHandler.ProjectChat)
		}
	}
}
