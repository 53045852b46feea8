package main

import (
	"errors"
	"log"

	api "officeflow-backend/cmd/api"
	chatDelivery "officeflow-backend/internal/chat/delivery"
	chatUsecase "officeflow-backend/internal/chat/usecase"
	documentDelivery "officeflow-backend/internal/document/delivery"
	documentdomain "officeflow-backend/internal/document/domain"
	documentRepo "officeflow-backend/internal/document/repository"
	documentUsecase "officeflow-backend/internal/document/usecase"
	"officeflow-backend/internal/operation"
	projectDelivery "officeflow-backend/internal/project/delivery"
	projectdomain "officeflow-backend/internal/project/domain"
	projectRepo "officeflow-backend/internal/project/repository"
	projectUsecase "officeflow-backend/internal/project/usecase"
	taskDelivery "officeflow-backend/internal/task/delivery"
	taskdomain "officeflow-backend/internal/task/domain"
	taskRepo "officeflow-backend/internal/task/repository"
	taskUsecase "officeflow-backend/internal/task/usecase"
	userDelivery "officeflow-backend/internal/user/delivery"
	userdomain "officeflow-backend/internal/user/domain"
	userRepo "officeflow-backend/internal/user/repository"
	"officeflow-backend/pkg/config"
	"officeflow-backend/pkg/database"
	"officeflow-backend/pkg/llm"
	"officeflow-backend/pkg/mailer"
	"officeflow-backend/pkg/semantic"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&taskdomain.Task{}, &projectdomain.Project{}, &documentdomain.Document{}, &userdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	projectRepository := projectRepo.NewGormProjectRepository(db)
	documentRepository := documentRepo.NewGormDocumentRepository(db)
	userRepository := userRepo.NewGormUserRepository(db)

	// Initialize mail clients
	smtpSender := mailer.NewSMTPSender(cfg.MailServer, cfg.MailPort, cfg.MailUseTLS, cfg.MailUsername, cfg.MailPassword, cfg.MailDefaultSender)
	inboxReader := mailer.NewInboxReader(cfg.IMAPServer, cfg.IMAPPort, cfg.MailUsername, cfg.MailPassword)

	// Build the operation registry
	emailOps := operation.NewEmailOperations(smtpSender, inboxReader)
	fileOps := operation.NewFileOperations()
	pdfOps := operation.NewPDFOperations()
	registry := operation.NewDefaultRegistry(emailOps, fileOps, pdfOps)

	// Initialize LLM provider and semantic context client
	chatService, err := llm.NewChatService(llm.Config{
		OpenAIKey:      cfg.OpenAIKey,
		OpenAIModel:    cfg.OpenAIModel,
		AnthropicKey:   cfg.AnthropicKey,
		AnthropicModel: cfg.AnthropicModel,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			log.Printf("[WARN] No LLM API key configured, chat endpoints will return errors")
		} else {
			log.Printf("[WARN] Failed to initialize LLM provider: %v", err)
		}
	} else {
		log.Printf("LLM provider initialized: %s", chatService.Provider())
	}
	semanticClient := semantic.NewClient(cfg.SemanticAPIURL, cfg.SemanticTimeout)

	// Initialize use cases (dependency injection)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository, registry, cfg.DispatchPolicy)
	projectUc := projectUsecase.NewProjectUsecase(projectRepository)
	documentUc := documentUsecase.NewDocumentUsecase(documentRepository, cfg.UploadDir, cfg.AllowedExtensions)
	chatUc := chatUsecase.NewChatUsecase(chatService, semanticClient, cfg.MaxContextChunks)

	// Initialize HTTP handler
	handler := api.NewHandler(
		cfg,
		taskDelivery.NewTaskHandler(taskUc),
		projectDelivery.NewProjectHandler(projectUc),
		documentDelivery.NewDocumentHandler(documentUc),
		userDelivery.NewUserHandler(userRepository),
		chatDelivery.NewChatHandler(chatUc),
	)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
