package dto

import "github.com/GlebRadaev/clubcredits/internal/domain"

type BalanceResponseDTO struct {
	Balance        int     `json:"balance" example:"85"`
	TotalEarned    int     `json:"totalEarned" example:"145"`
	TotalSpent     int     `json:"totalSpent" example:"60"`
	TasksCompleted int     `json:"tasksCompleted" example:"8"`
	EuroValue      float64 `json:"euroValue" example:"42.5"`
}

type AdjustCreditsRequestDTO struct {
	Amount      int    `json:"amount" validate:"ne=0" example:"-10"`
	Description string `json:"description" validate:"required" example:"Correction for double booking"`
}

type RedeemResponseDTO struct {
	Transaction domain.Transaction `json:"transaction"`
	Voucher     domain.Voucher     `json:"voucher"`
}

type MemberDTO struct {
	domain.Volunteer
	Fairness domain.Fairness `json:"fairness" example:"average"`
}
