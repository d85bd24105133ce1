// Package session keeps the single signed-in identity of the dashboard and
// persists its id in a durable slot so it survives restarts.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
)

// SlotKey is the only key the holder ever writes.
const SlotKey = "auth_user_id"

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrNoSession   = errors.New("no user signed in")
)

// Directory resolves seeded identities. The store implements it.
type Directory interface {
	User(id string) (domain.User, error)
	Volunteers() []domain.Volunteer
	Admins() []domain.Admin
}

// Slot is the durable key/value cell the current user id is written to.
// Load returns an empty id and no error when nothing is stored.
type Slot interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}

type Holder struct {
	mu      sync.RWMutex
	dir     Directory
	slot    Slot
	current string
}

func New(dir Directory, slot Slot) *Holder {
	return &Holder{dir: dir, slot: slot}
}

// Current returns the signed-in user resolved against the directory, so ledger
// fields are never stale.
func (h *Holder) Current() (domain.User, error) {
	h.mu.RLock()
	id := h.current
	h.mu.RUnlock()

	if id == "" {
		return nil, ErrNoSession
	}
	user, err := h.dir.User(id)
	if err != nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// CurrentID is empty when nobody is signed in.
func (h *Holder) CurrentID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Login makes id the current user. An unknown id signs the current user out
// without touching the slot.
func (h *Holder) Login(ctx context.Context, id string) (domain.User, error) {
	user, err := h.dir.User(id)
	if err != nil {
		h.set("")
		return nil, ErrUnknownUser
	}
	h.set(id)
	if err := h.slot.Save(ctx, SlotKey, id); err != nil {
		zap.L().Error("can't persist session", zap.String("user_id", id), zap.Error(err))
		return user, err
	}
	return user, nil
}

func (h *Holder) Logout(ctx context.Context) error {
	h.set("")
	if err := h.slot.Clear(ctx, SlotKey); err != nil {
		zap.L().Error("can't clear session", zap.Error(err))
		return err
	}
	return nil
}

// SwitchRole swaps a volunteer for the first admin and an admin for the first
// volunteer. Without a current user it does nothing and returns ErrNoSession.
func (h *Holder) SwitchRole(ctx context.Context) (domain.User, error) {
	current, err := h.Current()
	if err != nil {
		return nil, err
	}

	var next string
	switch current.Role() {
	case domain.RoleVolunteer:
		if admins := h.dir.Admins(); len(admins) > 0 {
			next = admins[0].ID
		}
	case domain.RoleAdmin:
		if volunteers := h.dir.Volunteers(); len(volunteers) > 0 {
			next = volunteers[0].ID
		}
	}
	if next == "" {
		return current, nil
	}
	return h.Login(ctx, next)
}

// Restore reads the slot at startup. A stored id that no longer resolves is
// ignored.
func (h *Holder) Restore(ctx context.Context) (domain.User, error) {
	id, err := h.slot.Load(ctx, SlotKey)
	if err != nil {
		zap.L().Error("can't load session", zap.Error(err))
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	user, err := h.dir.User(id)
	if err != nil {
		zap.L().Info("ignoring stale session", zap.String("user_id", id))
		return nil, nil
	}
	h.set(id)
	return user, nil
}

func (h *Holder) set(id string) {
	h.mu.Lock()
	h.current = id
	h.mu.Unlock()
}
