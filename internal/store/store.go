// Package store is the in-memory ledger and task store. It owns every mutable
// collection and is the only place where they change. Operations either apply
// completely or leave the state untouched and report why through a sentinel error.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
)

const dateLayout = "2006-01-02"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskFull             = errors.New("task is full")
	ErrAlreadyAssigned      = errors.New("volunteer already assigned")
	ErrAlreadyWaitlisted    = errors.New("volunteer already on the waitlist")
	ErrInvalidTask          = errors.New("invalid task")
	ErrVolunteerNotFound    = errors.New("volunteer not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrItemNotFound         = errors.New("shop item not found")
	ErrTemplateNotFound     = errors.New("template not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrTaskClosed          = errors.New("task is closed")
	ErrNotOpen             = errors.New("task is not open for sign-up")
	ErrItemUnavailable     = errors.New("shop item is not available")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

type Option func(*Store)

// WithClock replaces time.Now for transaction dates and notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid based identity generator.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

func newUUID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	newID func(prefix string) string

	club          domain.Club
	volunteers    []domain.Volunteer
	admins        []domain.Admin
	tasks         []domain.Task
	transactions  []domain.Transaction
	shopItems     []domain.ShopItem
	availability  []domain.Availability
	templates     []domain.TaskTemplate
	announcements []domain.Announcement
	notifications []domain.Notification
}

// New seeds a store from snap. The snapshot is copied, later changes to it are
// not observed.
func New(snap *fixtures.Snapshot, opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		newID:         newUUID,
		club:          snap.Club,
		volunteers:    append([]domain.Volunteer{}, snap.Volunteers...),
		admins:        append([]domain.Admin{}, snap.Admins...),
		tasks:         make([]domain.Task, 0, len(snap.Tasks)),
		transactions:  append([]domain.Transaction{}, snap.Transactions...),
		shopItems:     append([]domain.ShopItem{}, snap.ShopItems...),
		availability:  append([]domain.Availability{}, snap.Availability...),
		templates:     append([]domain.TaskTemplate{}, snap.Templates...),
		announcements: append([]domain.Announcement{}, snap.Announcements...),
		notifications: append([]domain.Notification{}, snap.Notifications...),
	}
	for _, t := range snap.Tasks {
		s.tasks = append(s.tasks, t.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) volunteerIndex(id string) int {
	for i := range s.volunteers {
		if s.volunteers[i].ID == id {
			return i
		}
	}
	return -1
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
