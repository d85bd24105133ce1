package dto

import "github.com/GlebRadaev/clubcredits/internal/domain"

type AvailabilitySlotDTO struct {
	DayOfWeek int             `json:"dayOfWeek" validate:"gte=0,lte=6" example:"1"`
	TimeSlot  domain.TimeSlot `json:"timeSlot" validate:"oneof=morning afternoon evening" example:"evening"`
}

type ToggleAvailabilityResponseDTO struct {
	Available bool `json:"available"`
}

type TemplateRequestDTO struct {
	Title         string              `json:"title" validate:"required" example:"Saturday bar shift"`
	Description   string              `json:"description"`
	Category      domain.TaskCategory `json:"category" validate:"oneof=bar canteen maintenance events coaching administration" example:"bar"`
	CreditReward  int                 `json:"creditReward" validate:"gte=0" example:"15"`
	StartTime     string              `json:"startTime" validate:"datetime=15:04" example:"12:00"`
	EndTime       string              `json:"endTime" validate:"datetime=15:04" example:"17:00"`
	Location      string              `json:"location"`
	MaxVolunteers int                 `json:"maxVolunteers" validate:"gte=1" example:"3"`
	Recurrence    domain.Recurrence   `json:"recurrence" validate:"oneof=weekly biweekly monthly none" example:"weekly"`
}

func (r TemplateRequestDTO) Template() domain.TaskTemplate {
	return domain.TaskTemplate{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		CreditReward:  r.CreditReward,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Location:      r.Location,
		MaxVolunteers: r.MaxVolunteers,
		Recurrence:    r.Recurrence,
	}
}

type GenerateRequestDTO struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02" example:"2026-03-30"`
}

type OccurrencesResponseDTO struct {
	Dates []string `json:"dates"`
}
