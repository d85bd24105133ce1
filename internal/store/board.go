package store

import (
	"sort"

	"github.com/GlebRadaev/clubcredits/internal/domain"
)

// Announcements lists pinned announcements first, otherwise newest first as stored.
func (s *Store) Announcements() []domain.Announcement {
	s.mu.RLock()
	out := append([]domain.Announcement{}, s.announcements...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPinned && !out[j].IsPinned
	})
	return out
}

func (s *Store) CreateAnnouncement(a domain.Announcement) domain.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.newID("ann")
	if a.Date == "" {
		a.Date = s.today()
	}
	s.announcements = append([]domain.Announcement{a}, s.announcements...)
	return a
}

func (s *Store) DeleteAnnouncement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.announcements {
		if a.ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return nil
		}
	}
	return ErrAnnouncementNotFound
}

func (s *Store) TogglePinAnnouncement(id string) (domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements[i].IsPinned = !s.announcements[i].IsPinned
			return s.announcements[i], nil
		}
	}
	return domain.Announcement{}, ErrAnnouncementNotFound
}

func (s *Store) UserNotifications(userID string) []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) Notification(id string) (domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Notification{}, ErrNotificationNotFound
}

// Notify appends an unread notification for the user.
func (s *Store) Notify(userID string, kind domain.NotificationType, title, message string) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := domain.Notification{
		ID:        s.newID("notif"),
		UserID:    userID,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
		Type:      kind,
	}
	s.notifications = append(s.notifications, n)
	return n
}

func (s *Store) MarkNotificationRead(id string) (domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return s.notifications[i], nil
		}
	}
	return domain.Notification{}, ErrNotificationNotFound
}

func (s *Store) Club() domain.Club {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.club
}

func (s *Store) UpdateClub(club domain.Club) domain.Club {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.club = club
	return s.club
}
