package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/session"
	"github.com/GlebRadaev/clubcredits/pkg/utils"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

type Service interface {
	Users(ctx context.Context) []dto.UserDTO
	Login(ctx context.Context, userID string) (*dto.SessionResponseDTO, error)
	Logout(ctx context.Context) error
	SwitchRole(ctx context.Context) (*dto.SessionResponseDTO, error)
	Current(ctx context.Context) (*dto.UserDTO, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Users godoc
//
//	@Summary		List demo identities
//	@Description	Every seeded volunteer and admin that can be picked on the login screen
//	@Tags			Session
//	@Produce		json
//	@Success		200	{array}	dto.UserDTO
//	@Router			/api/users [get]
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.authService.Users(r.Context()))
}

// Login godoc
//
//	@Summary		Sign in as a seeded user
//	@Description	Make the given user the current one and get a JWT token for it
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unknown user"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/session/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, session.ErrUnknownUser) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unknown user")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+resp.Token)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Current godoc
//
//	@Summary		Current user
//	@Description	The signed-in user with up to date ledger fields
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserDTO
//	@Failure		401	{object}	utils.Response	"No user signed in"
//	@Router			/api/session [get]
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Current(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "No user signed in")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// Logout godoc
//
//	@Summary		Sign out
//	@Tags			Session
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/session/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// SwitchRole godoc
//
//	@Summary		Switch between volunteer and admin
//	@Description	A volunteer becomes the first admin, an admin becomes the first volunteer. A new token is issued.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		401	{object}	utils.Response	"No user signed in"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/session/switch-role [post]
func (h *AuthHandler) SwitchRole(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authService.SwitchRole(r.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			utils.RespondWithError(w, http.StatusUnauthorized, "No user signed in")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+resp.Token)
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
