package dto

import "github.com/GlebRadaev/clubcredits/internal/domain"

type TaskRequestDTO struct {
	Title                string              `json:"title" validate:"required" example:"Bar duty Saturday"`
	Description          string              `json:"description"`
	Category             domain.TaskCategory `json:"category" validate:"oneof=bar canteen maintenance events coaching administration" example:"bar"`
	CreditReward         int                 `json:"creditReward" validate:"gte=0" example:"25"`
	Date                 string              `json:"date" validate:"datetime=2006-01-02" example:"2026-04-04"`
	StartTime            string              `json:"startTime" validate:"datetime=15:04" example:"12:00"`
	EndTime              string              `json:"endTime" validate:"datetime=15:04" example:"17:00"`
	Location             string              `json:"location" example:"Clubhouse bar"`
	Status               domain.TaskStatus   `json:"status" validate:"omitempty,oneof=open in_progress completed cancelled" example:"open"`
	MaxVolunteers        int                 `json:"maxVolunteers" validate:"gte=1" example:"2"`
	AssignedVolunteerIDs []string            `json:"assignedVolunteerIds"`
	WaitlistVolunteerIDs []string            `json:"waitlistVolunteerIds"`
}

// Task builds the domain task; an empty status means open.
func (r TaskRequestDTO) Task(id string) domain.Task {
	status := r.Status
	if status == "" {
		status = domain.TaskOpen
	}
	t := domain.Task{
		ID:                   id,
		Title:                r.Title,
		Description:          r.Description,
		Category:             r.Category,
		CreditReward:         r.CreditReward,
		Date:                 r.Date,
		StartTime:            r.StartTime,
		EndTime:              r.EndTime,
		Location:             r.Location,
		Status:               status,
		MaxVolunteers:        r.MaxVolunteers,
		AssignedVolunteerIDs: r.AssignedVolunteerIDs,
		WaitlistVolunteerIDs: r.WaitlistVolunteerIDs,
	}
	return t.Clone()
}

type TaskFilterDTO struct {
	Status   domain.TaskStatus   `validate:"omitempty,oneof=open in_progress completed cancelled"`
	Category domain.TaskCategory `validate:"omitempty,oneof=bar canteen maintenance events coaching administration"`
}

type CancelSignUpResponseDTO struct {
	Task     domain.Task `json:"task"`
	Promoted string      `json:"promotedVolunteerId,omitempty" example:"vol-3"`
}

type CompleteTaskResponseDTO struct {
	Task         domain.Task          `json:"task"`
	Transactions []domain.Transaction `json:"transactions"`
}
