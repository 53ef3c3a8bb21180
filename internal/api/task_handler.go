package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service"
)

// TaskHandler handles the task lifecycle endpoints. Every authenticated
// caller may act on every task; there is no per-task ownership check.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Create handles POST /api/tasks. The creator is taken from the verified
// token, never from the body, and the new task always starts in todo with
// a best-effort duration estimate.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := shared.AuthUser(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	task, err := h.tasks.Create(r.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}, caller.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// List handles GET /api/tasks, newest first. Optional ?status= and
// ?assignee_id= query parameters narrow the result; combining both is
// not supported and status wins.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []*domain.Task
		err   error
	)

	switch {
	case r.URL.Query().Get("status") != "":
		tasks, err = h.tasks.ListByStatus(r.Context(), r.URL.Query().Get("status"))
	case r.URL.Query().Get("assignee_id") != "":
		var assigneeID int64
		assigneeID, err = strconv.ParseInt(r.URL.Query().Get("assignee_id"), 10, 64)
		if err != nil {
			HandleAPIError(w, r, fmt.Errorf("%w: assignee_id", domain.ErrInvalidID))
			return
		}
		tasks, err = h.tasks.ListByAssignee(r.Context(), assigneeID)
	default:
		tasks, err = h.tasks.List(r.Context())
	}
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /api/tasks/{id}. Absent fields keep their stored
// values; explicit nulls clear the clearable ones. A rejected patch leaves
// the stored record untouched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.tasks.Update(r.Context(), id, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		ActualHours: req.ActualHours,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
