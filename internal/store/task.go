package store

import (
	"context"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task and fills in the store-assigned ID and
	// timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List returns all tasks ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByStatus returns tasks with the given status, newest first.
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)

	// ListByAssignee returns tasks assigned to the given user, newest first.
	ListByAssignee(ctx context.Context, assigneeID int64) ([]*domain.Task, error)

	// Update persists the task's mutable fields (title, description,
	// status, assignee, actual hours) and refreshes the update timestamp.
	// PredictedHours is write-once and deliberately not updatable.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID. Hard delete, no referential checks.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
