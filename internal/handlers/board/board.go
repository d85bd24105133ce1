package board

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/service/boardservice"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Service interface {
	Announcements(ctx context.Context) []domain.Announcement
	CreateAnnouncement(ctx context.Context, authorID string, req dto.AnnouncementRequestDTO) (domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (domain.Announcement, error)
	Notifications(ctx context.Context, userID string) []domain.Notification
	MarkRead(ctx context.Context, userID, notificationID string) (domain.Notification, error)
	Club(ctx context.Context) domain.Club
	UpdateClub(ctx context.Context, req dto.ClubRequestDTO) domain.Club
}

type BoardHandler struct {
	boardService Service
}

func New(boardService Service) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

func respondWithBoardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrAnnouncementNotFound),
		errors.Is(err, boardservice.ErrNotificationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, boardservice.ErrEmptyTitle):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Announcements godoc
//
//	@Summary		Announcement board
//	@Description	Pinned announcements first, then newest first
//	@Tags			Board
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	domain.Announcement
//	@Router			/api/announcements [get]
func (h *BoardHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.boardService.Announcements(r.Context()))
}

// CreateAnnouncement godoc
//
//	@Summary	Publish an announcement
//	@Tags		Board admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AnnouncementRequestDTO	true	"Announcement"
//	@Success	201		{object}	domain.Announcement
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/announcements [post]
func (h *BoardHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.AnnouncementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.boardService.CreateAnnouncement(r.Context(), userID, req)
	if err != nil {
		respondWithBoardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

// DeleteAnnouncement godoc
//
//	@Summary	Delete an announcement
//	@Tags		Board admin
//	@Security	BearerAuth
//	@Param		announcementID	path	string	true	"Announcement id"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Announcement not found"
//	@Router		/api/announcements/{announcementID} [delete]
func (h *BoardHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.boardService.DeleteAnnouncement(r.Context(), chi.URLParam(r, "announcementID")); err != nil {
		respondWithBoardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// TogglePin godoc
//
//	@Summary	Pin or unpin an announcement
//	@Tags		Board admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		announcementID	path		string	true	"Announcement id"
//	@Success	200				{object}	domain.Announcement
//	@Failure	404				{object}	utils.Response	"Announcement not found"
//	@Router		/api/announcements/{announcementID}/pin [post]
func (h *BoardHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	a, err := h.boardService.TogglePin(r.Context(), chi.URLParam(r, "announcementID"))
	if err != nil {
		respondWithBoardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

// Notifications godoc
//
//	@Summary		Notifications of the current user
//	@Description	Newest first
//	@Tags			Notifications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	domain.Notification
//	@Router			/api/me/notifications [get]
func (h *BoardHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, h.boardService.Notifications(r.Context(), userID))
}

// MarkRead godoc
//
//	@Summary	Mark a notification read
//	@Tags		Notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		notificationID	path		string	true	"Notification id"
//	@Success	200				{object}	domain.Notification
//	@Failure	404				{object}	utils.Response	"Notification not found"
//	@Router		/api/notifications/{notificationID}/read [post]
func (h *BoardHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	n, err := h.boardService.MarkRead(r.Context(), userID, chi.URLParam(r, "notificationID"))
	if err != nil {
		respondWithBoardError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, n)
}

// Club godoc
//
//	@Summary	Club settings and stats
//	@Tags		Club
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	domain.Club
//	@Router		/api/club [get]
func (h *BoardHandler) Club(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.boardService.Club(r.Context()))
}

// UpdateClub godoc
//
//	@Summary	Update club settings
//	@Tags		Club admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ClubRequestDTO	true	"Club settings"
//	@Success	200		{object}	domain.Club
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Router		/api/club [put]
func (h *BoardHandler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	var req dto.ClubRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.boardService.UpdateClub(r.Context(), req))
}
