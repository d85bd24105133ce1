package dto

import (
	"time"

	"github.com/GlebRadaev/clubcredits/internal/domain"
)

type LoginRequestDTO struct {
	UserID string `json:"userId" validate:"required" example:"vol-1"`
}

// UserDTO flattens both kinds of user; ledger fields are only set for
// volunteers.
type UserDTO struct {
	domain.Profile
	Role           domain.Role `json:"role" example:"volunteer"`
	CreditBalance  *int        `json:"creditBalance,omitempty" example:"85"`
	TotalEarned    *int        `json:"totalEarned,omitempty" example:"145"`
	TotalSpent     *int        `json:"totalSpent,omitempty" example:"60"`
	TasksCompleted *int        `json:"tasksCompleted,omitempty" example:"8"`
}

func NewUserDTO(u domain.User) UserDTO {
	out := UserDTO{Profile: u.Identity(), Role: u.Role()}
	if v, ok := u.(domain.Volunteer); ok {
		out.CreditBalance = &v.CreditBalance
		out.TotalEarned = &v.TotalEarned
		out.TotalSpent = &v.TotalSpent
		out.TasksCompleted = &v.TasksCompleted
	}
	return out
}

type SessionResponseDTO struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserDTO   `json:"user"`
}
