package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/clubcredits/internal/domain"
)

func announcementIDs(list []domain.Announcement) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func TestStore_Announcements(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, []string{"ann-2", "ann-1"}, announcementIDs(s.Announcements()))

	created := s.CreateAnnouncement(domain.Announcement{AuthorID: "a1", Title: "New"})
	assert.Equal(t, "ann-gen1", created.ID)
	assert.Equal(t, "2026-03-25", created.Date)
	assert.Equal(t, []string{"ann-2", created.ID, "ann-1"}, announcementIDs(s.Announcements()))

	pinned, err := s.TogglePinAnnouncement("ann-1")
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)
	assert.Equal(t, []string{"ann-1", "ann-2", created.ID}, announcementIDs(s.Announcements()))

	unpinned, err := s.TogglePinAnnouncement("ann-1")
	require.NoError(t, err)
	assert.False(t, unpinned.IsPinned)

	require.NoError(t, s.DeleteAnnouncement("ann-2"))
	assert.Equal(t, []string{created.ID, "ann-1"}, announcementIDs(s.Announcements()))

	assert.ErrorIs(t, s.DeleteAnnouncement("ann-2"), ErrAnnouncementNotFound)
	_, err = s.TogglePinAnnouncement("ann-2")
	assert.ErrorIs(t, err, ErrAnnouncementNotFound)
}

func TestStore_Notifications(t *testing.T) {
	s := newTestStore(t)

	n := s.Notify("v2", domain.NotificationCredit, "Credits", "You earned 25")
	assert.Equal(t, "notif-gen1", n.ID)
	assert.False(t, n.Read)
	assert.Equal(t, fixedNow, n.CreatedAt)

	list := s.UserNotifications("v2")
	require.Len(t, list, 1)
	assert.Equal(t, n, list[0])

	read, err := s.MarkNotificationRead(n.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	got, err := s.Notification(n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	_, err = s.MarkNotificationRead("nope")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	_, err = s.Notification("nope")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestStore_Club(t *testing.T) {
	s := newTestStore(t)

	club := s.Club()
	assert.Equal(t, "SV Test", club.Name)

	club.Name = "SV Renamed"
	assert.Equal(t, "SV Renamed", s.UpdateClub(club).Name)
	assert.Equal(t, "SV Renamed", s.Club().Name)
}
