package planning

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/planningservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/recurrence"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Service interface {
	ToggleAvailability(ctx context.Context, volunteerID string, req dto.AvailabilitySlotDTO) bool
	Availability(ctx context.Context, volunteerID string) []domain.Availability
	AvailableVolunteers(ctx context.Context, day int, slot domain.TimeSlot) []string
	Templates(ctx context.Context) []domain.TaskTemplate
	CreateTemplate(ctx context.Context, req dto.TemplateRequestDTO) domain.TaskTemplate
	DeleteTemplate(ctx context.Context, templateID string) error
	Occurrences(ctx context.Context, templateID string, count int) ([]string, error)
	Generate(ctx context.Context, templateID string, dates []string) ([]domain.Task, error)
}

type PlanningHandler struct {
	planningService Service
}

func New(planningService Service) *PlanningHandler {
	return &PlanningHandler{
		planningService: planningService,
	}
}

func respondWithPlanningError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrTemplateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, planningservice.ErrInvalidCount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, recurrence.ErrUnknownCadence):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// MyAvailability godoc
//
//	@Summary	Availability of the current user
//	@Tags		Availability
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.Availability
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/me/availability [get]
func (h *PlanningHandler) MyAvailability(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.planningService.Availability(r.Context(), userID))
}

// ToggleAvailability godoc
//
//	@Summary		Toggle an availability slot
//	@Description	Adds the slot when missing, removes it otherwise
//	@Tags			Availability
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AvailabilitySlotDTO	true	"Day and time slot"
//	@Success		200		{object}	dto.ToggleAvailabilityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Router			/api/me/availability/toggle [post]
func (h *PlanningHandler) ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.AvailabilitySlotDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	available := h.planningService.ToggleAvailability(r.Context(), userID, req)
	utils.RespondWithJSON(w, http.StatusOK, dto.ToggleAvailabilityResponseDTO{Available: available})
}

// AvailableVolunteers godoc
//
//	@Summary	Volunteers available in a slot
//	@Tags		Availability admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		day		query		int		true	"Day of week, 0 is Sunday"
//	@Param		slot	query		string	true	"morning, afternoon or evening"
//	@Success	200		{array}		string
//	@Failure	400		{object}	utils.Response	"Invalid slot"
//	@Router		/api/availability [get]
func (h *PlanningHandler) AvailableVolunteers(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(r.URL.Query().Get("day"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid day")
		return
	}
	slot := dto.AvailabilitySlotDTO{DayOfWeek: day, TimeSlot: domain.TimeSlot(r.URL.Query().Get("slot"))}
	if err := validate.Struct(slot); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.planningService.AvailableVolunteers(r.Context(), slot.DayOfWeek, slot.TimeSlot))
}

// Templates godoc
//
//	@Summary	List task templates
//	@Tags		Templates admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	domain.TaskTemplate
//	@Router		/api/templates [get]
func (h *PlanningHandler) Templates(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.planningService.Templates(r.Context()))
}

// CreateTemplate godoc
//
//	@Summary	Create a task template
//	@Tags		Templates admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.TemplateRequestDTO	true	"Template"
//	@Success	201		{object}	domain.TaskTemplate
//	@Failure	400		{object}	utils.Response	"Invalid template"
//	@Router		/api/templates [post]
func (h *PlanningHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.TemplateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, h.planningService.CreateTemplate(r.Context(), req))
}

// DeleteTemplate godoc
//
//	@Summary	Delete a task template
//	@Tags		Templates admin
//	@Security	BearerAuth
//	@Param		templateID	path	string	true	"Template id"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Template not found"
//	@Router		/api/templates/{templateID} [delete]
func (h *PlanningHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.planningService.DeleteTemplate(r.Context(), chi.URLParam(r, "templateID")); err != nil {
		respondWithPlanningError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// Occurrences godoc
//
//	@Summary		Next dates of a template
//	@Description	Dates of the template cadence starting the Monday after today
//	@Tags			Templates admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			templateID	path		string	true	"Template id"
//	@Param			count		query		int		false	"Number of dates, 4 by default"
//	@Success		200			{object}	dto.OccurrencesResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid count"
//	@Failure		404			{object}	utils.Response	"Template not found"
//	@Failure		422			{object}	utils.Response	"Template has no cadence"
//	@Router			/api/templates/{templateID}/occurrences [get]
func (h *PlanningHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	count := planningservice.DefaultOccurrences
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid count")
			return
		}
		count = n
	}

	dates, err := h.planningService.Occurrences(r.Context(), chi.URLParam(r, "templateID"), count)
	if err != nil {
		respondWithPlanningError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OccurrencesResponseDTO{Dates: dates})
}

// Generate godoc
//
//	@Summary		Generate tasks from a template
//	@Description	One open task per date, with the template fields and no volunteers
//	@Tags			Templates admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			templateID	path		string					true	"Template id"
//	@Param			request		body		dto.GenerateRequestDTO	true	"Dates"
//	@Success		201			{array}		domain.Task
//	@Failure		400			{object}	utils.Response	"Invalid dates"
//	@Failure		404			{object}	utils.Response	"Template not found"
//	@Router			/api/templates/{templateID}/generate [post]
func (h *PlanningHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tasks, err := h.planningService.Generate(r.Context(), chi.URLParam(r, "templateID"), req.Dates)
	if err != nil {
		respondWithPlanningError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, tasks)
}
