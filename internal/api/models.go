package api

import (
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/patch"
)

// LoginRequest is the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// ChangePasswordRequest is the payload for the password change endpoint.
// The current password must be re-proven even though the caller already
// holds a valid token.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// CreateUserRequest is the payload for the admin-only user creation
// endpoint. Role is optional and defaults to member.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin member"`
}

// CreateTaskRequest is the payload for task creation. Status is not
// client-settable; new tasks always start in todo.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	AssigneeID  *int64  `json:"assignee_id"`
}

// UpdateTaskRequest is the payload for partial task updates. Every field
// distinguishes absent from explicit null: an absent field keeps the
// stored value, a null clears it where clearing is allowed. There is no
// predicted_hours field; the prediction is fixed at creation.
type UpdateTaskRequest struct {
	Title       patch.Field[string]  `json:"title"`
	Description patch.Field[string]  `json:"description"`
	Status      patch.Field[string]  `json:"status"`
	AssigneeID  patch.Field[int64]   `json:"assignee_id"`
	ActualHours patch.Field[float64] `json:"actual_hours"`
}

// MessageResponse is a minimal confirmation body for endpoints that have
// nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}
