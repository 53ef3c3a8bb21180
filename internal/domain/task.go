package domain

import (
	"time"
)

// TaskStatus is the closed set of task states. Transitions between states
// are unrestricted; the only rule is membership in the set.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether the status is a member of the closed set.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a unit of work tracked by the service.
//
// PredictedHours is write-once: it is set (best-effort) during creation
// from the estimation service and never altered by updates. AssigneeID is
// a weak reference — the referenced user is not guaranteed to exist.
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Status         TaskStatus `json:"status"`
	PredictedHours *float64   `json:"predicted_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	AssigneeID     *int64     `json:"assignee_id"`
	CreatedBy      int64      `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewTask creates a Task in the default todo state for the given creator.
func NewTask(title string, description *string, assigneeID *int64, createdBy int64) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Status:      TaskStatusTodo,
		AssigneeID:  assigneeID,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTitle)
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "is not a known status", ErrInvalidStatus)
	}
	if t.CreatedBy == 0 {
		return NewValidationError("created_by", "cannot be empty", ErrValidation)
	}
	return nil
}
