package sessionservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
	"github.com/GlebRadaev/clubcredits/internal/session"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
)

func newService(t *testing.T) (*Service, *session.Holder, *auth.JWTService) {
	t.Helper()
	snap, err := fixtures.Load()
	require.NoError(t, err)
	st := store.New(snap)
	holder := session.New(st, session.NewMemorySlot())
	tokens := auth.NewJWTService("test-secret")
	return New(holder, st, tokens, time.Hour), holder, tokens
}

func TestUsers(t *testing.T) {
	service, _, _ := newService(t)

	users := service.Users(context.Background())
	require.Len(t, users, 9)
	assert.Equal(t, "vol-1", users[0].ID)
	assert.Equal(t, domain.RoleVolunteer, users[0].Role)
	require.NotNil(t, users[0].CreditBalance)
	assert.Equal(t, 85, *users[0].CreditBalance)
	assert.Equal(t, "admin-1", users[7].ID)
	assert.Equal(t, domain.RoleAdmin, users[7].Role)
	assert.Nil(t, users[7].CreditBalance)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		expectedErr error
		role        domain.Role
	}{
		{name: "Volunteer", userID: "vol-2", role: domain.RoleVolunteer},
		{name: "Admin", userID: "admin-1", role: domain.RoleAdmin},
		{name: "Unknown user", userID: "ghost", expectedErr: session.ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, holder, tokens := newService(t)

			resp, err := service.Login(context.Background(), tt.userID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
				assert.Empty(t, holder.CurrentID())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, resp.User.ID)
			assert.Equal(t, tt.role, resp.User.Role)
			assert.Equal(t, tt.userID, holder.CurrentID())

			claims, err := tokens.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, string(tt.role), claims.Role)
		})
	}
}

func TestSwitchRole(t *testing.T) {
	service, holder, _ := newService(t)
	ctx := context.Background()

	_, err := service.SwitchRole(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = service.Login(ctx, "vol-4")
	require.NoError(t, err)

	resp, err := service.SwitchRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", resp.User.ID)
	assert.Equal(t, "admin-1", holder.CurrentID())

	resp, err = service.SwitchRole(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vol-1", resp.User.ID)
}

func TestCurrentAndLogout(t *testing.T) {
	service, holder, _ := newService(t)
	ctx := context.Background()

	_, err := service.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	_, err = service.Login(ctx, "admin-2")
	require.NoError(t, err)

	user, err := service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-2", user.ID)

	require.NoError(t, service.Logout(ctx))
	assert.Empty(t, holder.CurrentID())
}
