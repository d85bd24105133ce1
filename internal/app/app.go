package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/config"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
	"github.com/GlebRadaev/clubcredits/internal/handlers"
	"github.com/GlebRadaev/clubcredits/internal/pg"
	"github.com/GlebRadaev/clubcredits/internal/planner"
	"github.com/GlebRadaev/clubcredits/internal/repo"
	"github.com/GlebRadaev/clubcredits/internal/service"
	"github.com/GlebRadaev/clubcredits/internal/store"
	"github.com/GlebRadaev/clubcredits/pkg/auth"
	"github.com/GlebRadaev/clubcredits/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	store   *store.Store
	planner *planner.Service

	pool *pgxpool.Pool
	rdb  *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New(cfg *config.Config) *Application {
	return &Application{
		cfg:   cfg,
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	snap, err := loadSnapshot(a.cfg)
	if err != nil {
		return fmt.Errorf("can't load fixtures: %w", err)
	}
	a.store = store.New(snap)

	if err := a.initRepositories(ctx); err != nil {
		return err
	}

	a.srv = service.New(a.store, a.repo, auth.NewJWTService(a.cfg.JWTSecret), a.cfg.TokenTTL)
	if user, err := a.srv.Holder.Restore(ctx); err != nil {
		zap.L().Warn("can't restore session", zap.Error(err))
	} else if user != nil {
		zap.L().Info("session restored", zap.String("user_id", user.Identity().ID))
	}
	a.api = handlers.New(a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if a.cfg.PlannerEnabled {
		a.planner = planner.New(a.cfg, a.srv.PlannerSource)
		if err := a.planner.Start(ctx); err != nil {
			return fmt.Errorf("can't start planner: %w", err)
		}
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func loadSnapshot(cfg *config.Config) (*fixtures.Snapshot, error) {
	if cfg.FixturesPath != "" {
		return fixtures.LoadFile(cfg.FixturesPath)
	}
	return fixtures.Load()
}

// initRepositories opens only the backend the session slot is configured for.
func (a *Application) initRepositories(ctx context.Context) error {
	var (
		conn      pg.Database
		txManager pg.TXManager
	)

	switch a.cfg.SessionStore {
	case config.SessionPostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		conn = pg.New(pool)
		txManager = pg.NewTXManager(pool)
	case config.SessionRedis:
		rdb, err := getRedisClient(ctx, a.cfg)
		if err != nil {
			zap.L().Error("connect to redis failed: ", zap.Error(err))
			return fmt.Errorf("can't connect to redis: %w", err)
		}
		a.rdb = rdb
	}

	var rdb redis.Cmdable
	if a.rdb != nil {
		rdb = a.rdb
	}
	repos, err := repo.New(a.cfg.SessionStore, conn, txManager, rdb)
	if err != nil {
		return fmt.Errorf("can't build repositories: %w", err)
	}
	a.repo = repos
	zap.L().Info("session slot ready", zap.String("backend", a.cfg.SessionStore))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func getRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) closeBackends() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			zap.L().Error("redis close failed", zap.Error(err))
		}
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.closeBackends()

	return appErr
}
