package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"officeflow-backend/internal/operation"
	"officeflow-backend/internal/task/domain"
	"officeflow-backend/internal/task/repository"
	"officeflow-backend/pkg/config"
)

func newTestRegistry() *operation.Registry {
	r := operation.NewRegistry()
	r.Register(operation.KeySendEmail, func(ctx context.Context, p operation.Params) operation.Outcome {
		return operation.Success("email sent to "+p.String("recipient", "?"), map[string]any{
			"recipient": p.String("recipient", ""),
		})
	})
	r.Register(operation.KeyMergePDFs, func(ctx context.Context, p operation.Params) operation.Outcome {
		return operation.Errorf("at least two PDF files are required")
	})
	r.Register(operation.KeyExtractText, func(ctx context.Context, p operation.Params) operation.Outcome {
		panic("boom")
	})
	return r
}

func createPending(t *testing.T, uc TaskUsecase, category, typ string, params map[string]any) *domain.Task {
	t.Helper()
	task, err := uc.CreateTask(CreateTaskInput{
		Name:       "test task",
		Category:   category,
		Type:       typ,
		Parameters: params,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != domain.TaskStatusPending {
		t.Fatalf("new task status = %s, want pending", task.Status)
	}
	return task
}

func TestRunCompletesTask(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task := createPending(t, uc, "email", "send_email", map[string]any{"recipient": "bob@example.com"})

	done, err := uc.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done.Status != domain.TaskStatusCompleted {
		t.Errorf("status = %s, want completed", done.Status)
	}
	if !done.Status.Terminal() {
		t.Errorf("status %s not terminal after run", done.Status)
	}
	if done.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if done.Error != nil {
		t.Errorf("Error = %q, want nil", *done.Error)
	}
	if done.Result["status"] != "success" {
		t.Errorf("result status = %v", done.Result["status"])
	}
	if done.Result["message"] != "email sent to bob@example.com" {
		t.Errorf("result message = %v", done.Result["message"])
	}

	// terminal state must be persisted, not just returned
	stored, _ := repo.FindByID(task.ID)
	if stored.Status != domain.TaskStatusCompleted {
		t.Errorf("persisted status = %s, want completed", stored.Status)
	}
}

func TestRunFailsTaskOnErrorOutcome(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task := createPending(t, uc, "pdf", "merge_pdfs", nil)

	done, err := uc.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done.Status != domain.TaskStatusFailed {
		t.Errorf("status = %s, want failed", done.Status)
	}
	if !done.Status.Terminal() {
		t.Errorf("status %s not terminal after run", done.Status)
	}
	if done.Error == nil || *done.Error != "at least two PDF files are required" {
		t.Errorf("Error = %v", done.Error)
	}
	if done.Result["status"] != "error" {
		t.Errorf("result status = %v", done.Result["status"])
	}
	if done.CompletedAt == nil {
		t.Error("CompletedAt not set on failure")
	}
}

func TestRunRecoversFromHandlerPanic(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task := createPending(t, uc, "pdf", "extract_text", nil)

	done, err := uc.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done.Status != domain.TaskStatusFailed {
		t.Errorf("status = %s, want failed", done.Status)
	}
	if done.Error == nil || !strings.Contains(*done.Error, "panicked") {
		t.Errorf("Error = %v, want panic message", done.Error)
	}
}

func TestRunUnknownKindPermissive(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task := createPending(t, uc, "email", "teleport", nil)

	done, err := uc.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done.Status != domain.TaskStatusCompleted {
		t.Errorf("status = %s, want completed for permissive no-op", done.Status)
	}
	if done.Result["message"] != "task completed, no result" {
		t.Errorf("result message = %v", done.Result["message"])
	}
}

func TestStrictPolicyRejectsUnknownKind(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyStrict)

	_, err := uc.CreateTask(CreateTaskInput{
		Name:     "bogus",
		Category: "email",
		Type:     "teleport",
	})
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Errorf("CreateTask err = %v, want ErrUnknownKind", err)
	}
}

func TestStrictPolicyFailsUnknownKindAtRun(t *testing.T) {
	// create under permissive, run under strict: the unknown kind must fail
	repo := repository.NewMemoryTaskRepository()
	permissive := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)
	task := createPending(t, permissive, "email", "teleport", nil)

	strict := NewTaskUsecase(repo, newTestRegistry(), config.PolicyStrict)
	done, err := strict.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done.Status != domain.TaskStatusFailed {
		t.Errorf("status = %s, want failed", done.Status)
	}
}

func TestRunMissingTask(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	_, err := uc.Run(context.Background(), 999)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("Run err = %v, want ErrTaskNotFound", err)
	}
}

func TestCreateTaskClampsPriority(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task, err := uc.CreateTask(CreateTaskInput{
		Name:     "priority check",
		Category: "email",
		Type:     "send_email",
		Priority: 9,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Priority != 1 {
		t.Errorf("priority = %d, want 1", task.Priority)
	}
}

func TestRerunTerminalTask(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	uc := NewTaskUsecase(repo, newTestRegistry(), config.PolicyPermissive)

	task := createPending(t, uc, "email", "send_email", map[string]any{"recipient": "a@b.c"})

	if _, err := uc.Run(context.Background(), task.ID); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	done, err := uc.Run(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if done.Status != domain.TaskStatusCompleted {
		t.Errorf("status after rerun = %s, want completed", done.Status)
	}
}
