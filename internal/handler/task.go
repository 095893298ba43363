package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/TaskQuest_Go/internal/domain"
	"github.com/osse101/TaskQuest_Go/internal/logger"
	"github.com/osse101/TaskQuest_Go/internal/task"
)

// TaskHandler contains HTTP handlers for tasks
type TaskHandler struct {
	service task.Service
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(service task.Service) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTaskRequest is the request body for creating a task
type CreateTaskRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Title    string `json:"title" validate:"required,max=200"`
	Priority string `json:"priority" validate:"priority"`
}

// TasksResponse lists a user's tasks
type TasksResponse struct {
	UserID string        `json:"user_id"`
	Tasks  []domain.Task `json:"tasks"`
}

// HandleCreateTask creates a task for the caller
// @Summary Create task
// @Tags tasks
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param request body CreateTaskRequest true "Task"
// @Success 201 {object} domain.Task
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/tasks [post]
func (h *TaskHandler) HandleCreateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := GetCallerID(r, w)
		if !ok {
			return
		}

		var req CreateTaskRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create task"); err != nil {
			return
		}
		if callerID != req.UserID && callerID != domain.SystemActorID {
			respondServiceError(w, r, "Create task", domain.ErrForbidden)
			return
		}

		created, err := h.service.CreateTask(r.Context(), req.UserID, req.Title, domain.Priority(strings.ToLower(req.Priority)))
		if err != nil {
			respondServiceError(w, r, "Create task", err)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListTasks lists a user's tasks, newest first
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param user_id query string true "User id"
// @Param include_completed query bool false "Include completed tasks"
// @Success 200 {object} TasksResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks [get]
func (h *TaskHandler) HandleListTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, ParamUserID)
		if !ok {
			return
		}
		includeCompleted, ok := GetOptionalBoolQueryParam(r, w, ParamIncludeCompleted, false)
		if !ok {
			return
		}

		tasks, err := h.service.ListTasks(r.Context(), userID, includeCompleted)
		if err != nil {
			respondServiceError(w, r, "List tasks", err)
			return
		}
		respondJSON(w, http.StatusOK, TasksResponse{UserID: userID, Tasks: tasks})
	}
}

// HandleCompleteTask completes a task and awards its XP to the owner
// @Summary Complete task
// @Tags tasks
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param id path string true "Task id"
// @Success 200 {object} domain.TaskCompletionResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/tasks/{id}/complete [post]
func (h *TaskHandler) HandleCompleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := GetCallerID(r, w)
		if !ok {
			return
		}

		taskID, err := uuid.Parse(chi.URLParam(r, ParamTaskID))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidTaskID)
			return
		}

		result, err := h.service.CompleteTask(r.Context(), callerID, taskID)
		if err != nil {
			respondServiceError(w, r, "Complete task", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgTaskCompleted, "task_id", taskID, "xp_award", result.XPAward)
		respondJSON(w, http.StatusOK, result)
	}
}
