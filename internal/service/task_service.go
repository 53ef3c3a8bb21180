package service

import (
	"context"
	"fmt"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/patch"
	"github.com/taskwell/taskwell-api/internal/store"
)

// Estimator predicts task durations. PredictSafe never fails: any error in
// the underlying call is absorbed and reported as a nil estimate.
type Estimator interface {
	PredictSafe(ctx context.Context, title string, description *string) *float64
}

// CreateTaskInput carries the client-settable fields for task creation.
// AssigneeID is a weak reference and is stored without an existence check.
type CreateTaskInput struct {
	Title       string
	Description *string
	AssigneeID  *int64
}

// TaskPatch is a partial update. Each field is three-state: absent keeps
// the current value, explicit null clears it, a value replaces it.
// Title and Status are not clearable; PredictedHours is write-once and has
// no patch field at all.
type TaskPatch struct {
	Title       patch.Field[string]
	Description patch.Field[string]
	Status      patch.Field[string]
	AssigneeID  patch.Field[int64]
	ActualHours patch.Field[float64]
}

// TaskService implements the task lifecycle: CRUD, status validation,
// partial-update merging, and best-effort estimation on creation.
type TaskService struct {
	tasks     store.TaskStore
	estimator Estimator
}

// NewTaskService creates a TaskService with the given dependencies.
func NewTaskService(tasks store.TaskStore, estimator Estimator) *TaskService {
	return &TaskService{
		tasks:     tasks,
		estimator: estimator,
	}
}

// Create validates the input, asks the estimator for a predicted duration
// (best-effort: a dead estimator just means no estimate), and persists the
// task in the todo state for the authenticated creator.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput, createdBy int64) (*domain.Task, error) {
	task, err := domain.NewTask(in.Title, in.Description, in.AssigneeID, createdBy)
	if err != nil {
		return nil, err
	}

	task.PredictedHours = s.estimator.PredictSafe(ctx, in.Title, in.Description)

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get retrieves a task by ID.
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// List returns all tasks, newest first.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

// ListByStatus returns tasks in the given status, newest first. The status
// string is validated against the closed set before it reaches the store.
func (s *TaskService) ListByStatus(ctx context.Context, status string) ([]*domain.Task, error) {
	st := domain.TaskStatus(status)
	if !st.Valid() {
		return nil, domain.NewValidationError("status", "is not a known status", domain.ErrInvalidStatus)
	}
	return s.tasks.ListByStatus(ctx, st)
}

// ListByAssignee returns tasks assigned to the given user, newest first.
func (s *TaskService) ListByAssignee(ctx context.Context, assigneeID int64) ([]*domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, assigneeID)
}

// Update applies a partial update to a task. The current record is fetched
// first (store.ErrTaskNotFound if absent), the patch is merged field by
// field, and the merged record is validated and persisted. An invalid
// status or an attempt to clear a non-clearable field fails before
// anything is written, leaving the stored record unchanged.
func (s *TaskService) Update(ctx context.Context, id int64, p TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPatch(task, p); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task unconditionally. No soft delete, no referential
// checks. Returns store.ErrTaskNotFound if no row matched.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.tasks.Delete(ctx, id)
}

func applyPatch(task *domain.Task, p TaskPatch) error {
	if p.Title.Set {
		if p.Title.Null || p.Title.Value == "" {
			return domain.NewValidationError("title", "cannot be cleared", domain.ErrEmptyTitle)
		}
		task.Title = p.Title.Value
	}

	if p.Status.Set {
		if p.Status.Null {
			return domain.NewValidationError("status", "cannot be cleared", domain.ErrInvalidStatus)
		}
		st := domain.TaskStatus(p.Status.Value)
		if !st.Valid() {
			return domain.NewValidationError("status", "is not a known status", domain.ErrInvalidStatus)
		}
		// Any member of the set is reachable from any other; there is no
		// transition ordering to enforce.
		task.Status = st
	}

	if p.Description.Set {
		if p.Description.Null {
			task.Description = nil
		} else {
			v := p.Description.Value
			task.Description = &v
		}
	}

	if p.AssigneeID.Set {
		if p.AssigneeID.Null {
			task.AssigneeID = nil
		} else {
			v := p.AssigneeID.Value
			task.AssigneeID = &v
		}
	}

	if p.ActualHours.Set {
		if p.ActualHours.Null {
			task.ActualHours = nil
		} else {
			v := p.ActualHours.Value
			task.ActualHours = &v
		}
	}

	return nil
}
