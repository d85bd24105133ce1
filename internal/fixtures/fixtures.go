// Package fixtures holds the seed snapshot every store starts from.
package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/pkg/validate"
)

//go:embed seed.yaml
var seed []byte

var ErrInvalidSnapshot = errors.New("invalid fixture snapshot")

type Snapshot struct {
	Club          domain.Club           `yaml:"club"`
	Volunteers    []domain.Volunteer    `yaml:"volunteers" validate:"dive"`
	Admins        []domain.Admin        `yaml:"admins" validate:"dive"`
	Tasks         []domain.Task         `yaml:"tasks" validate:"dive"`
	Transactions  []domain.Transaction  `yaml:"transactions" validate:"dive"`
	ShopItems     []domain.ShopItem     `yaml:"shopItems" validate:"dive"`
	Availability  []domain.Availability `yaml:"availability" validate:"dive"`
	Templates     []domain.TaskTemplate `yaml:"templates" validate:"dive"`
	Announcements []domain.Announcement `yaml:"announcements" validate:"dive"`
	Notifications []domain.Notification `yaml:"notifications" validate:"dive"`
}

// Load parses the embedded seed snapshot.
func Load() (*Snapshot, error) {
	return Parse(seed)
}

// LoadFile parses a snapshot from disk, replacing the embedded one.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	for i := range snap.Tasks {
		if snap.Tasks[i].AssignedVolunteerIDs == nil {
			snap.Tasks[i].AssignedVolunteerIDs = []string{}
		}
		if snap.Tasks[i].WaitlistVolunteerIDs == nil {
			snap.Tasks[i].WaitlistVolunteerIDs = []string{}
		}
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Validate checks field formats and the cross-record invariants the store relies on.
func (s *Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if len(s.Volunteers) == 0 || len(s.Admins) == 0 {
		return fmt.Errorf("%w: at least one volunteer and one admin are required", ErrInvalidSnapshot)
	}

	users := make(map[string]struct{}, len(s.Volunteers)+len(s.Admins))
	for _, v := range s.Volunteers {
		users[v.ID] = struct{}{}
	}
	for _, a := range s.Admins {
		if _, dup := users[a.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %s", ErrInvalidSnapshot, a.ID)
		}
		users[a.ID] = struct{}{}
	}

	for _, t := range s.Tasks {
		if err := t.CheckInvariants(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}

	type slotKey struct {
		volunteer string
		day       int
		slot      domain.TimeSlot
	}
	slots := make(map[slotKey]struct{}, len(s.Availability))
	for _, a := range s.Availability {
		k := slotKey{a.VolunteerID, a.DayOfWeek, a.TimeSlot}
		if _, dup := slots[k]; dup {
			return fmt.Errorf("%w: availability %s duplicates a slot", ErrInvalidSnapshot, a.ID)
		}
		slots[k] = struct{}{}
	}
	return nil
}

// Counts summarises the snapshot per collection.
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		"volunteers":    len(s.Volunteers),
		"admins":        len(s.Admins),
		"tasks":         len(s.Tasks),
		"transactions":  len(s.Transactions),
		"shopItems":     len(s.ShopItems),
		"availability":  len(s.Availability),
		"templates":     len(s.Templates),
		"announcements": len(s.Announcements),
		"notifications": len(s.Notifications),
	}
}
