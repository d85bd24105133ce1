// Package planner keeps the task board filled from recurring templates.
package planner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/clubcredits/internal/config"
	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/metrics"
)

type Source interface {
	Templates(ctx context.Context) []domain.TaskTemplate
	PlanAhead(ctx context.Context, templateID string, horizon int) ([]domain.Task, error)
}

type Service struct {
	source     Source
	workerPool WorkerPoolI
	horizon    int
	interval   time.Duration

	inFlight  sync.Map
	scheduler gocron.Scheduler
}

func New(cfg *config.Config, source Source) *Service {
	return &Service{
		source:     source,
		workerPool: NewWorkerPool(cfg.PlannerWorkers),
		horizon:    cfg.PlannerHorizon,
		interval:   cfg.PlannerInterval,
	}
}

// Start schedules a planning run every interval, the first one right away.
// The scheduler stops when ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("can't create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			n, err := s.planAll(ctx)
			metrics.PlannerRun(err)
			if err != nil {
				zap.L().Error("planner run failed", zap.Error(err))
				return
			}
			zap.L().Info("planner run finished", zap.Int("generated", n))
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("can't schedule planner: %w", err)
	}

	s.scheduler = sched
	sched.Start()
	zap.L().Info("planner started", zap.Duration("interval", s.interval), zap.Int("horizon", s.horizon))

	go func() {
		<-ctx.Done()
		if err := s.Stop(); err != nil {
			zap.L().Error("can't stop planner", zap.Error(err))
		}
	}()
	return nil
}

func (s *Service) Stop() error {
	var err error
	if s.scheduler != nil {
		err = s.scheduler.Shutdown()
	}
	s.workerPool.Close()
	return err
}

// planAll runs PlanAhead for every recurring template and returns the number
// of tasks generated. Templates still being planned from an earlier run are
// skipped.
func (s *Service) planAll(ctx context.Context) (int, error) {
	var (
		g         errgroup.Group
		generated atomic.Int64
	)

	for _, tmpl := range s.source.Templates(ctx) {
		if tmpl.Recurrence == domain.RecurrenceNone {
			continue
		}
		if _, loaded := s.inFlight.LoadOrStore(tmpl.ID, struct{}{}); loaded {
			continue
		}

		id := tmpl.ID
		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(id)
				tasks, err := s.source.PlanAhead(ctx, id, s.horizon)
				if err == nil {
					generated.Add(int64(len(tasks)))
				}
				done <- err
				return err
			})
			if err != nil {
				s.inFlight.Delete(id)
				return err
			}

			select {
			case err := <-done:
				if err != nil {
					return fmt.Errorf("template %s: %w", id, err)
				}
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	err := g.Wait()
	return int(generated.Load()), err
}
