package store

import (
	"github.com/GlebRadaev/clubcredits/internal/domain"
)

// ToggleAvailability removes the (volunteer, day, slot) record when present and
// inserts it otherwise. It reports whether the slot is set afterwards.
func (s *Store) ToggleAvailability(volunteerID string, day int, slot domain.TimeSlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.availability {
		if a.VolunteerID == volunteerID && a.DayOfWeek == day && a.TimeSlot == slot {
			s.availability = append(s.availability[:i], s.availability[i+1:]...)
			return false
		}
	}
	s.availability = append(s.availability, domain.Availability{
		ID:          s.newID("avail"),
		VolunteerID: volunteerID,
		DayOfWeek:   day,
		TimeSlot:    slot,
	})
	return true
}

func (s *Store) VolunteerAvailability(volunteerID string) []domain.Availability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Availability, 0)
	for _, a := range s.availability {
		if a.VolunteerID == volunteerID {
			out = append(out, a)
		}
	}
	return out
}

// AvailableVolunteers lists the volunteer ids that marked the day and slot.
func (s *Store) AvailableVolunteers(day int, slot domain.TimeSlot) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0)
	for _, a := range s.availability {
		if a.DayOfWeek == day && a.TimeSlot == slot {
			out = append(out, a.VolunteerID)
		}
	}
	return out
}

func (s *Store) Templates() []domain.TaskTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.TaskTemplate{}, s.templates...)
}

func (s *Store) Template(id string) (domain.TaskTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.TaskTemplate{}, ErrTemplateNotFound
}

func (s *Store) CreateTemplate(tmpl domain.TaskTemplate) domain.TaskTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmpl.ID = s.newID("tmpl")
	s.templates = append(s.templates, tmpl)
	return tmpl
}

func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return ErrTemplateNotFound
}

// GenerateFromTemplate creates one open task per date from the template and
// puts the batch, in input order, in front of the existing tasks. Dates that
// already have a task are not skipped.
func (s *Store) GenerateFromTemplate(templateID string, dates []string) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tmpl *domain.TaskTemplate
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			tmpl = &s.templates[i]
			break
		}
	}
	if tmpl == nil {
		return nil, ErrTemplateNotFound
	}

	generated := make([]domain.Task, 0, len(dates))
	for _, date := range dates {
		generated = append(generated, domain.Task{
			ID:                   s.newID("task"),
			Title:                tmpl.Title,
			Description:          tmpl.Description,
			Category:             tmpl.Category,
			CreditReward:         tmpl.CreditReward,
			Date:                 date,
			StartTime:            tmpl.StartTime,
			EndTime:              tmpl.EndTime,
			Location:             tmpl.Location,
			Status:               domain.TaskOpen,
			MaxVolunteers:        tmpl.MaxVolunteers,
			AssignedVolunteerIDs: []string{},
			WaitlistVolunteerIDs: []string{},
			TemplateID:           tmpl.ID,
		})
	}

	batch := make([]domain.Task, 0, len(generated)+len(s.tasks))
	batch = append(batch, generated...)
	s.tasks = append(batch, s.tasks...)

	out := make([]domain.Task, 0, len(generated))
	for _, t := range generated {
		out = append(out, t.Clone())
	}
	return out, nil
}

// HasGeneratedTask reports whether a task was already produced from the
// template for the date.
func (s *Store) HasGeneratedTask(templateID, date string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.TemplateID == templateID && t.Date == date {
			return true
		}
	}
	return false
}
