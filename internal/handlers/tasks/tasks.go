package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/taskservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Service interface {
	List(ctx context.Context, filter dto.TaskFilterDTO) []domain.Task
	Get(ctx context.Context, taskID string) (domain.Task, error)
	UserTasks(ctx context.Context, userID string) []domain.Task
	SignUp(ctx context.Context, taskID, volunteerID string) (domain.Task, error)
	CancelSignUp(ctx context.Context, taskID, volunteerID string) (*dto.CancelSignUpResponseDTO, error)
	JoinWaitlist(ctx context.Context, taskID, volunteerID string) (domain.Task, error)
	LeaveWaitlist(ctx context.Context, taskID, volunteerID string) (domain.Task, error)
	Create(ctx context.Context, req dto.TaskRequestDTO) (domain.Task, error)
	Update(ctx context.Context, taskID string, req dto.TaskRequestDTO) (domain.Task, error)
	Delete(ctx context.Context, taskID string) error
	Complete(ctx context.Context, taskID string) (*dto.CompleteTaskResponseDTO, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func respondWithTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrInvalidTask):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrTaskFull),
		errors.Is(err, store.ErrAlreadyAssigned),
		errors.Is(err, store.ErrAlreadyWaitlisted),
		errors.Is(err, taskservice.ErrTaskClosed),
		errors.Is(err, taskservice.ErrNotOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// List godoc
//
//	@Summary		List tasks
//	@Description	All tasks, optionally filtered by status and category
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status		query		string	false	"open, in_progress, completed or cancelled"
//	@Param			category	query		string	false	"bar, canteen, maintenance, events, coaching or administration"
//	@Success		200			{array}		domain.Task
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Router			/api/tasks [get]
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := dto.TaskFilterDTO{
		Status:   domain.TaskStatus(r.URL.Query().Get("status")),
		Category: domain.TaskCategory(r.URL.Query().Get("category")),
	}
	if err := validate.Struct(filter); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.taskService.List(r.Context(), filter))
}

// Get godoc
//
//	@Summary	Get a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		taskID	path		string	true	"Task id"
//	@Success	200		{object}	domain.Task
//	@Failure	404		{object}	utils.Response	"Task not found"
//	@Router		/api/tasks/{taskID} [get]
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.Get(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// MyTasks godoc
//
//	@Summary		Tasks of the current user
//	@Description	Tasks the current user is assigned to or waitlisted on
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.Task
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/me/tasks [get]
func (h *TaskHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.taskService.UserTasks(r.Context(), userID))
}

// SignUp godoc
//
//	@Summary		Sign up for a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		string	true	"Task id"
//	@Success		200		{object}	domain.Task
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task full, closed or already joined"
//	@Router			/api/tasks/{taskID}/signup [post]
func (h *TaskHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	task, err := h.taskService.SignUp(r.Context(), chi.URLParam(r, "taskID"), userID)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// CancelSignUp godoc
//
//	@Summary		Cancel a sign-up
//	@Description	Frees the seat; the head of the waitlist is promoted into it
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		string	true	"Task id"
//	@Success		200		{object}	dto.CancelSignUpResponseDTO
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Router			/api/tasks/{taskID}/signup [delete]
func (h *TaskHandler) CancelSignUp(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	resp, err := h.taskService.CancelSignUp(r.Context(), chi.URLParam(r, "taskID"), userID)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// JoinWaitlist godoc
//
//	@Summary	Join the waitlist of a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		taskID	path		string	true	"Task id"
//	@Success	200		{object}	domain.Task
//	@Failure	404		{object}	utils.Response	"Task not found"
//	@Failure	409		{object}	utils.Response	"Already assigned, waitlisted or task closed"
//	@Router		/api/tasks/{taskID}/waitlist [post]
func (h *TaskHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	task, err := h.taskService.JoinWaitlist(r.Context(), chi.URLParam(r, "taskID"), userID)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// LeaveWaitlist godoc
//
//	@Summary	Leave the waitlist of a task
//	@Tags		Tasks
//	@Security	BearerAuth
//	@Produce	json
//	@Param		taskID	path		string	true	"Task id"
//	@Success	200		{object}	domain.Task
//	@Failure	404		{object}	utils.Response	"Task not found"
//	@Router		/api/tasks/{taskID}/waitlist [delete]
func (h *TaskHandler) LeaveWaitlist(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	task, err := h.taskService.LeaveWaitlist(r.Context(), chi.URLParam(r, "taskID"), userID)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// Create godoc
//
//	@Summary	Create a task
//	@Tags		Tasks admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TaskRequestDTO	true	"Task"
//	@Success	201		{object}	domain.Task
//	@Failure	400		{object}	utils.Response	"Invalid task"
//	@Failure	403		{object}	utils.Response	"Admins only"
//	@Router		/api/tasks [post]
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, task)
}

// Update godoc
//
//	@Summary		Replace a task
//	@Description	Every field is replaced; the assigned list may not exceed maxVolunteers
//	@Tags			Tasks admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			taskID	path		string				true	"Task id"
//	@Param			request	body		dto.TaskRequestDTO	true	"Task"
//	@Success		200		{object}	domain.Task
//	@Failure		400		{object}	utils.Response	"Invalid task"
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Router			/api/tasks/{taskID} [put]
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.TaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Update(r.Context(), chi.URLParam(r, "taskID"), req)
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}

// Delete godoc
//
//	@Summary	Delete a task
//	@Tags		Tasks admin
//	@Security	BearerAuth
//	@Param		taskID	path	string	true	"Task id"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Task not found"
//	@Router		/api/tasks/{taskID} [delete]
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Complete godoc
//
//	@Summary		Complete a task
//	@Description	Marks the task completed and pays its reward to every assigned volunteer
//	@Tags			Tasks admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			taskID	path		string	true	"Task id"
//	@Success		200		{object}	dto.CompleteTaskResponseDTO
//	@Failure		404		{object}	utils.Response	"Task not found"
//	@Failure		409		{object}	utils.Response	"Task already closed"
//	@Router			/api/tasks/{taskID}/complete [post]
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	resp, err := h.taskService.Complete(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithTaskError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
