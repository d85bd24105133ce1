package planningservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/metrics"
	"github.com/GlebRadaev/clubcredits/pkg/recurrence"
)

type Store interface {
	ToggleAvailability(volunteerID string, day int, slot domain.TimeSlot) bool
	VolunteerAvailability(volunteerID string) []domain.Availability
	AvailableVolunteers(day int, slot domain.TimeSlot) []string
	Templates() []domain.TaskTemplate
	Template(id string) (domain.TaskTemplate, error)
	CreateTemplate(tmpl domain.TaskTemplate) domain.TaskTemplate
	DeleteTemplate(id string) error
	GenerateFromTemplate(templateID string, dates []string) ([]domain.Task, error)
	HasGeneratedTask(templateID, date string) bool
}

const (
	DefaultOccurrences = 4
	MaxOccurrences     = 52
)

var ErrInvalidCount = errors.New("occurrence count out of range")

type Service struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) ToggleAvailability(_ context.Context, volunteerID string, req dto.AvailabilitySlotDTO) bool {
	return s.store.ToggleAvailability(volunteerID, req.DayOfWeek, req.TimeSlot)
}

func (s *Service) Availability(_ context.Context, volunteerID string) []domain.Availability {
	return s.store.VolunteerAvailability(volunteerID)
}

func (s *Service) AvailableVolunteers(_ context.Context, day int, slot domain.TimeSlot) []string {
	return s.store.AvailableVolunteers(day, slot)
}

func (s *Service) Templates(_ context.Context) []domain.TaskTemplate {
	return s.store.Templates()
}

func (s *Service) CreateTemplate(_ context.Context, req dto.TemplateRequestDTO) domain.TaskTemplate {
	tmpl := s.store.CreateTemplate(req.Template())
	zap.L().Info("template created", zap.String("template_id", tmpl.ID), zap.String("recurrence", string(tmpl.Recurrence)))
	return tmpl
}

func (s *Service) DeleteTemplate(_ context.Context, templateID string) error {
	return s.store.DeleteTemplate(templateID)
}

// Occurrences lists the next count dates of the template's cadence, starting
// the Monday after today.
func (s *Service) Occurrences(_ context.Context, templateID string, count int) ([]string, error) {
	if count < 1 || count > MaxOccurrences {
		return nil, ErrInvalidCount
	}
	tmpl, err := s.store.Template(templateID)
	if err != nil {
		return nil, err
	}
	return recurrence.NextOccurrences(string(tmpl.Recurrence), s.now(), count)
}

// Generate creates one task per date. Dates already generated are created
// again.
func (s *Service) Generate(_ context.Context, templateID string, dates []string) ([]domain.Task, error) {
	tasks, err := s.store.GenerateFromTemplate(templateID, dates)
	if err != nil {
		return nil, err
	}
	metrics.TasksGenerated("manual", len(tasks))
	zap.L().Info("tasks generated", zap.String("template_id", templateID), zap.Int("count", len(tasks)))
	return tasks, nil
}

// PlanAhead generates the next horizon occurrences of the template, skipping
// dates that already have a task from it.
func (s *Service) PlanAhead(_ context.Context, templateID string, horizon int) ([]domain.Task, error) {
	tmpl, err := s.store.Template(templateID)
	if err != nil {
		return nil, err
	}
	dates, err := recurrence.NextOccurrences(string(tmpl.Recurrence), s.now(), horizon)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0, len(dates))
	for _, d := range dates {
		if !s.store.HasGeneratedTask(templateID, d) {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return []domain.Task{}, nil
	}

	tasks, err := s.store.GenerateFromTemplate(templateID, missing)
	if err != nil {
		return nil, err
	}
	metrics.TasksGenerated("planner", len(tasks))
	return tasks, nil
}
