package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler/dto"
	"github.com/interactkolhapur/clubsite/internal/middleware"
	"github.com/interactkolhapur/clubsite/internal/service"
)

// handleListTasks lists tasks through a named filter.
// @Summary List tasks
// @Description List all tasks, optionally narrowed by a named filter. Order is insertion order.
// @Tags tasks
// @Produce json
// @Param filter query string false "Filter: all (default), assigned_to_me, created_by_me, pending, in_progress, completed"
// @Success 200 {array} dto.TaskResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [get]
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	filter := domain.TaskFilter(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = domain.FilterAll
	}

	tasks, err := h.taskService.ListTasks(ctx, user, filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponses(tasks))
}

// handleCreateTask creates a new task.
// @Summary Create a task
// @Description Creates a pending task owned by the acting user.
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task creation request"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks [post]
func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	task, err := h.taskService.CreateTask(ctx, user, service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		AssigneeID:  req.AssigneeID,
		DueDate:     dueDate,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTaskResponse(task))
}

// handleGetTask retrieves a single task.
// @Summary Get a task
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleUpdateTask applies a partial update to a task.
// @Summary Update a task
// @Description Partial update: absent fields are unchanged; assignee_id and due_date accept explicit null to clear.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Partial task update"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [patch]
func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	var params service.UpdateTaskParams
	params.Title = req.Title
	params.Description = req.Description
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		params.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		params.Priority = &priority
	}
	if req.Has("assignee_id") {
		params.AssigneeID = &req.AssigneeID
	}
	if req.Has("due_date") {
		var dueDate *time.Time
		if req.DueDate != nil {
			parsed, err := dto.ParseDate(*req.DueDate)
			if err != nil {
				respondDomainError(w, err)
				return
			}
			dueDate = parsed
		}
		params.DueDate = &dueDate
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleSetStatus sets the task status.
// @Summary Set task status
// @Description Sets status to any of pending, in_progress, completed. No transition ordering is enforced.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.SetStatusRequest true "Target status"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	task, err := h.taskService.SetStatus(r.Context(), taskID, domain.TaskStatus(req.Status))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleDeleteTask deletes a task and its comments.
// @Summary Delete a task
// @Description Deletes a task; its comments are removed with it. Not idempotent.
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleForwardTask reassigns a task to another member.
// @Summary Forward a task
// @Description Reassigns the task, records the previous holder, and optionally appends a comment. Atomic.
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.ForwardTaskRequest true "Forward request"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/forward [post]
func (h *Handler) handleForwardTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.ForwardTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if req.AssigneeID == "" {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "assignee_id is required")
		return
	}

	task, err := h.taskService.ForwardTask(ctx, user, taskID, req.AssigneeID, req.Comment)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToTaskResponse(task))
}

// handleGetComments lists a task's comments, oldest first.
// @Summary List task comments
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/comments [get]
func (h *Handler) handleGetComments(w http.ResponseWriter, r *http.Request) {
	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	comments, err := h.taskService.GetComments(r.Context(), taskID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToCommentResponses(comments))
}

// handleAddComment appends a comment to a task.
// @Summary Add a comment
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.AddCommentRequest true "Comment body"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tasks/{id}/comments [post]
func (h *Handler) handleAddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := middleware.GetUserFromContext(ctx)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return
	}

	taskID, ok := extractID(w, r)
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	comment, err := h.taskService.AddComment(ctx, user, taskID, req.Content)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToCommentResponse(comment))
}

// handleListUsers lists assignable directory members.
// @Summary List directory members
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserResponses(users))
}
