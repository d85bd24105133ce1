package repo

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GlebRadaev/clubcredits/internal/config"
	"github.com/GlebRadaev/clubcredits/internal/pg"
	sessioncache "github.com/GlebRadaev/clubcredits/internal/repo/session-cache"
	sessionrepo "github.com/GlebRadaev/clubcredits/internal/repo/session-repo"
	"github.com/GlebRadaev/clubcredits/internal/session"
)

var ErrBackendMissing = errors.New("session backend not configured")

type Repositories struct {
	SessionSlot session.Slot
}

// New picks the session slot backend named by kind. conn and txManager are only
// needed for postgres, rdb only for redis.
func New(kind string, conn pg.Database, txManager pg.TXManager, rdb redis.Cmdable) (*Repositories, error) {
	var slot session.Slot
	switch kind {
	case config.SessionMemory, "":
		slot = session.NewMemorySlot()
	case config.SessionPostgres:
		if conn == nil || txManager == nil {
			return nil, fmt.Errorf("%w: postgres", ErrBackendMissing)
		}
		slot = sessionrepo.New(conn, txManager)
	case config.SessionRedis:
		if rdb == nil {
			return nil, fmt.Errorf("%w: redis", ErrBackendMissing)
		}
		slot = sessioncache.New(rdb)
	default:
		return nil, fmt.Errorf("unknown session store %q", kind)
	}

	return &Repositories{
		SessionSlot: slot,
	}, nil
}
