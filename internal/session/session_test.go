package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
	"github.com/GlebRadaev/clubcredits/internal/store"
)

func newDirectory(t *testing.T) *store.Store {
	t.Helper()
	snap, err := fixtures.Load()
	require.NoError(t, err)
	return store.New(snap)
}

func NewMock(t *testing.T) (*Holder, *MockSlot) {
	ctrl := gomock.NewController(t)
	slot := NewMockSlot(ctrl)
	return New(newDirectory(t), slot), slot
}

func TestHolder_Login(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		prepareMock func(slot *MockSlot)
		wantRole    domain.Role
		wantErr     error
		wantCurrent string
	}{
		{
			name:   "volunteer",
			userID: "vol-1",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Save(gomock.Any(), SlotKey, "vol-1").Return(nil)
			},
			wantRole:    domain.RoleVolunteer,
			wantCurrent: "vol-1",
		},
		{
			name:   "admin",
			userID: "admin-2",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Save(gomock.Any(), SlotKey, "admin-2").Return(nil)
			},
			wantRole:    domain.RoleAdmin,
			wantCurrent: "admin-2",
		},
		{
			name:        "unknown id leaves slot untouched",
			userID:      "ghost",
			prepareMock: func(slot *MockSlot) {},
			wantErr:     ErrUnknownUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, slot := NewMock(t)
			tt.prepareMock(slot)

			user, err := h.Login(context.Background(), tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRole, user.Role())
			}
			assert.Equal(t, tt.wantCurrent, h.CurrentID())
		})
	}
}

func TestHolder_Login_UnknownSignsOut(t *testing.T) {
	h, slot := NewMock(t)
	slot.EXPECT().Save(gomock.Any(), SlotKey, "vol-2").Return(nil)

	_, err := h.Login(context.Background(), "vol-2")
	require.NoError(t, err)

	_, err = h.Login(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = h.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestHolder_Login_SlotError(t *testing.T) {
	h, slot := NewMock(t)
	slot.EXPECT().Save(gomock.Any(), SlotKey, "vol-1").Return(errors.New("redis down"))

	user, err := h.Login(context.Background(), "vol-1")
	assert.Error(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "vol-1", h.CurrentID())
}

func TestHolder_Logout(t *testing.T) {
	h, slot := NewMock(t)
	gomock.InOrder(
		slot.EXPECT().Save(gomock.Any(), SlotKey, "vol-1").Return(nil),
		slot.EXPECT().Clear(gomock.Any(), SlotKey).Return(nil),
	)

	_, err := h.Login(context.Background(), "vol-1")
	require.NoError(t, err)
	require.NoError(t, h.Logout(context.Background()))

	assert.Empty(t, h.CurrentID())
	_, err = h.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestHolder_SwitchRole(t *testing.T) {
	h, slot := NewMock(t)
	slot.EXPECT().Save(gomock.Any(), SlotKey, gomock.Any()).Return(nil).Times(3)

	_, err := h.Login(context.Background(), "vol-3")
	require.NoError(t, err)

	user, err := h.SwitchRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin-1", user.Identity().ID)
	assert.Equal(t, domain.RoleAdmin, user.Role())

	user, err = h.SwitchRole(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vol-1", user.Identity().ID)
	assert.Equal(t, domain.RoleVolunteer, user.Role())
}

func TestHolder_SwitchRole_NoUser(t *testing.T) {
	h, _ := NewMock(t)

	_, err := h.SwitchRole(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, h.CurrentID())
}

func TestHolder_Current_ReflectsLedger(t *testing.T) {
	dir := newDirectory(t)
	h := New(dir, NewMemorySlot())

	_, err := h.Login(context.Background(), "vol-1")
	require.NoError(t, err)

	before, err := h.Current()
	require.NoError(t, err)
	dir.AdjustCredits("vol-1", 10, "bonus")

	after, err := h.Current()
	require.NoError(t, err)
	assert.Equal(t,
		before.(domain.Volunteer).CreditBalance+10,
		after.(domain.Volunteer).CreditBalance,
	)
}

func TestHolder_Restore(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(slot *MockSlot)
		wantID      string
		wantErr     bool
	}{
		{
			name: "stored id",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Load(gomock.Any(), SlotKey).Return("admin-1", nil)
			},
			wantID: "admin-1",
		},
		{
			name: "empty slot",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Load(gomock.Any(), SlotKey).Return("", nil)
			},
		},
		{
			name: "stale id",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Load(gomock.Any(), SlotKey).Return("vol-99", nil)
			},
		},
		{
			name: "slot error",
			prepareMock: func(slot *MockSlot) {
				slot.EXPECT().Load(gomock.Any(), SlotKey).Return("", errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, slot := NewMock(t)
			tt.prepareMock(slot)

			user, err := h.Restore(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, h.CurrentID())
			if tt.wantID == "" {
				assert.Nil(t, user)
			} else {
				assert.Equal(t, tt.wantID, user.Identity().ID)
			}
		})
	}
}

func TestMemorySlot(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()

	v, err := slot.Load(ctx, SlotKey)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, slot.Save(ctx, SlotKey, "vol-1"))
	v, err = slot.Load(ctx, SlotKey)
	require.NoError(t, err)
	assert.Equal(t, "vol-1", v)

	require.NoError(t, slot.Clear(ctx, SlotKey))
	v, err = slot.Load(ctx, SlotKey)
	require.NoError(t, err)
	assert.Empty(t, v)
}
