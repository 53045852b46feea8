package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"officeflow-backend/internal/operation"
	"officeflow-backend/internal/task/domain"
	"officeflow-backend/internal/task/repository"
	"officeflow-backend/pkg/config"

	"gorm.io/datatypes"
)

// noHandlerMessage is the generic result a permissive dispatch produces when
// no handler matches the task's (category, type) pair.
const noHandlerMessage = "task completed, no result"

// taskUsecase implements TaskUsecase. Run is the single state machine in the
// system: pending -> running -> completed | failed, no retries, no
// cancellation. Re-running a terminal task simply re-executes it.
type taskUsecase struct {
	taskRepo repository.TaskRepository
	registry *operation.Registry
	policy   config.DispatchPolicy
}

func NewTaskUsecase(taskRepo repository.TaskRepository, registry *operation.Registry, policy config.DispatchPolicy) TaskUsecase {
	if policy == "" {
		policy = config.PolicyPermissive
	}
	return &taskUsecase{taskRepo: taskRepo, registry: registry, policy: policy}
}

func (u *taskUsecase) CreateTask(input CreateTaskInput) (*domain.Task, error) {
	key := operation.Key{Category: input.Category, Type: input.Type}
	if u.policy == config.PolicyStrict && !u.registry.Known(key) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownKind, key)
	}

	priority := input.Priority
	if priority < 1 || priority > 3 {
		priority = 1
	}

	task := &domain.Task{
		Name:              input.Name,
		Type:              input.Type,
		Category:          input.Category,
		Status:            domain.TaskStatusPending,
		Priority:          priority,
		Description:       input.Description,
		ScheduledFor:      input.ScheduledFor,
		CreatedBy:         input.CreatedBy,
		Parameters:        datatypes.JSONMap(input.Parameters),
		IsRecurring:       input.IsRecurring,
		RecurrencePattern: input.RecurrencePattern,
		Tags:              datatypes.JSONSlice[string](input.Tags),
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(id uint) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(status, category string) ([]*domain.Task, error) {
	switch {
	case status != "":
		return u.taskRepo.FindByStatus(domain.TaskStatus(status))
	case category != "":
		return u.taskRepo.FindByCategory(category)
	default:
		return u.taskRepo.FindAll()
	}
}

func (u *taskUsecase) DeleteTask(id uint) (bool, error) {
	return u.taskRepo.Delete(id)
}

// Run implements the dispatch state machine. The transition to running is
// persisted before the handler executes; if that persist fails the task is
// left at its last durable status and nothing runs.
func (u *taskUsecase) Run(ctx context.Context, id uint) (*domain.Task, error) {
	task, err := u.GetTaskByID(id)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatusRunning
	if err := u.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("persisting running state: %w", err)
	}

	key := operation.Key{Category: task.Category, Type: task.Type}
	outcome := u.dispatch(ctx, key, operation.Params(task.Parameters))

	now := time.Now()
	task.CompletedAt = &now
	task.Result = datatypes.JSONMap(outcome.Envelope())
	if outcome.Status == operation.StatusError {
		task.Status = domain.TaskStatusFailed
		msg := outcome.Message
		task.Error = &msg
	} else {
		task.Status = domain.TaskStatusCompleted
		task.Error = nil
	}

	if err := u.taskRepo.Update(task); err != nil {
		if outcome.Status == operation.StatusError {
			// Surface both failures rather than losing either one.
			return nil, fmt.Errorf("task failed (%s); persisting the failure also failed: %w", outcome.Message, err)
		}
		return nil, fmt.Errorf("persisting task outcome: %w", err)
	}

	return task, nil
}

// dispatch resolves and invokes the handler, converting a missing handler per
// the configured policy and a panicking handler into error outcomes.
func (u *taskUsecase) dispatch(ctx context.Context, key operation.Key, params operation.Params) (outcome operation.Outcome) {
	handler, ok := u.registry.Lookup(key)
	if !ok {
		if u.policy == config.PolicyStrict {
			return operation.Errorf("no handler registered for %s", key)
		}
		log.Printf("[DISPATCH] no handler for %s, completing as no-op", key)
		return operation.Success(noHandlerMessage, nil)
	}

	// Handlers are expected to return error outcomes themselves; a panic
	// escaping one is still forced into a failed terminal state.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[DISPATCH] handler %s panicked: %v", key, r)
			outcome = operation.Errorf("handler %s panicked: %v", key, r)
		}
	}()

	return handler(ctx, params)
}
