package sessionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/pg"
)

// Repository stores the session slot in the session_slot table.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Load(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, "SELECT value FROM session_slot WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		zap.L().Error("can't load session slot", zap.String("key", key), zap.Error(err))
		return "", err
	}
	return value, nil
}

func (r *Repository) Save(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO session_slot (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, key, value); err != nil {
			zap.L().Error("can't save session slot", zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Clear(ctx context.Context, key string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM session_slot WHERE key = $1", key); err != nil {
		zap.L().Error("can't clear session slot", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
