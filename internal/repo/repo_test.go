package repo

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/clubcredits/internal/pg"
	sessioncache "github.com/GlebRadaev/clubcredits/internal/repo/session-cache"
	sessionrepo "github.com/GlebRadaev/clubcredits/internal/repo/session-repo"
	"github.com/GlebRadaev/clubcredits/internal/session"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)
	rdb, _ := redismock.NewClientMock()
	defer rdb.Close()

	tests := []struct {
		name      string
		kind      string
		conn      pg.Database
		txManager pg.TXManager
		withRedis bool
		wantType  session.Slot
		expectErr error
	}{
		{
			name:     "memory",
			kind:     "memory",
			wantType: &session.MemorySlot{},
		},
		{
			name:     "default",
			kind:     "",
			wantType: &session.MemorySlot{},
		},
		{
			name:      "postgres",
			kind:      "postgres",
			conn:      mockDB,
			txManager: mockTxManager,
			wantType:  &sessionrepo.Repository{},
		},
		{
			name:      "redis",
			kind:      "redis",
			withRedis: true,
			wantType:  &sessioncache.Cache{},
		},
		{
			name:      "postgres without pool",
			kind:      "postgres",
			expectErr: ErrBackendMissing,
		},
		{
			name:      "redis without client",
			kind:      "redis",
			expectErr: ErrBackendMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var repos *Repositories
			var err error
			if tt.withRedis {
				repos, err = New(tt.kind, tt.conn, tt.txManager, rdb)
			} else {
				repos, err = New(tt.kind, tt.conn, tt.txManager, nil)
			}
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, repos.SessionSlot)
		})
	}

	_, err = New("etcd", nil, nil, nil)
	assert.Error(t, err)
}
