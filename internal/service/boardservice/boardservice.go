package boardservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/store"
)

type Store interface {
	Announcements() []domain.Announcement
	CreateAnnouncement(a domain.Announcement) domain.Announcement
	DeleteAnnouncement(id string) error
	TogglePinAnnouncement(id string) (domain.Announcement, error)
	UserNotifications(userID string) []domain.Notification
	Notification(id string) (domain.Notification, error)
	MarkNotificationRead(id string) (domain.Notification, error)
	Club() domain.Club
	UpdateClub(club domain.Club) domain.Club
}

// Notifications of other users are reported as missing.
var ErrNotificationNotFound = store.ErrNotificationNotFound

var ErrEmptyTitle = errors.New("announcement title is empty")

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Announcements(_ context.Context) []domain.Announcement {
	return s.store.Announcements()
}

func (s *Service) CreateAnnouncement(_ context.Context, authorID string, req dto.AnnouncementRequestDTO) (domain.Announcement, error) {
	if req.Title == "" {
		return domain.Announcement{}, ErrEmptyTitle
	}
	a := s.store.CreateAnnouncement(domain.Announcement{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
	})
	zap.L().Info("announcement published", zap.String("announcement_id", a.ID), zap.String("author_id", authorID))
	return a, nil
}

func (s *Service) DeleteAnnouncement(_ context.Context, id string) error {
	return s.store.DeleteAnnouncement(id)
}

func (s *Service) TogglePin(_ context.Context, id string) (domain.Announcement, error) {
	return s.store.TogglePinAnnouncement(id)
}

func (s *Service) Notifications(_ context.Context, userID string) []domain.Notification {
	return s.store.UserNotifications(userID)
}

// MarkRead marks one of the user's own notifications as read.
func (s *Service) MarkRead(_ context.Context, userID, notificationID string) (domain.Notification, error) {
	n, err := s.store.Notification(notificationID)
	if err != nil {
		return domain.Notification{}, err
	}
	if n.UserID != userID {
		zap.L().Info("notification of another user", zap.String("user_id", userID), zap.String("notification_id", notificationID))
		return domain.Notification{}, ErrNotificationNotFound
	}
	return s.store.MarkNotificationRead(notificationID)
}

func (s *Service) Club(_ context.Context) domain.Club {
	return s.store.Club()
}

// UpdateClub replaces the editable club settings; id and stats are kept.
func (s *Service) UpdateClub(_ context.Context, req dto.ClubRequestDTO) domain.Club {
	club := s.store.Club()
	club.Name = req.Name
	club.SportType = req.SportType
	club.CreditName = req.CreditName
	club.CreditSymbol = req.CreditSymbol
	club.CreditToEuroRatio = req.CreditToEuroRatio
	return s.store.UpdateClub(club)
}
