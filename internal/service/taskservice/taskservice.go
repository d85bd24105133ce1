package taskservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/metrics"
	"github.com/GlebRadaev/clubcredits/internal/store"
)

type Store interface {
	Tasks() []domain.Task
	Task(id string) (domain.Task, error)
	UserTasks(userID string) []domain.Task
	SignUpForOpenTask(taskID, volunteerID string) (domain.Task, error)
	CancelTaskSignUp(taskID, volunteerID string) (domain.Task, string, error)
	JoinActiveWaitlist(taskID, volunteerID string) (domain.Task, error)
	LeaveWaitlist(taskID, volunteerID string) (domain.Task, error)
	CreateTask(task domain.Task) (domain.Task, error)
	UpdateTask(task domain.Task) (domain.Task, error)
	DeleteTask(taskID string) error
	CompleteOpenTask(taskID string) (domain.Task, []domain.Transaction, error)
	Notify(userID string, kind domain.NotificationType, title, message string) domain.Notification
}

var (
	ErrTaskClosed = store.ErrTaskClosed
	ErrNotOpen    = store.ErrNotOpen
)

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// List returns the tasks matching the filter; empty filter fields match all.
func (s *Service) List(_ context.Context, filter dto.TaskFilterDTO) []domain.Task {
	tasks := s.store.Tasks()
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Service) Get(_ context.Context, taskID string) (domain.Task, error) {
	return s.store.Task(taskID)
}

func (s *Service) UserTasks(_ context.Context, userID string) []domain.Task {
	return s.store.UserTasks(userID)
}

func (s *Service) SignUp(_ context.Context, taskID, volunteerID string) (domain.Task, error) {
	task, err := s.store.SignUpForOpenTask(taskID, volunteerID)
	if err != nil {
		zap.L().Info("sign-up refused", zap.String("task_id", taskID), zap.String("volunteer_id", volunteerID), zap.Error(err))
		return task, err
	}
	zap.L().Info("volunteer signed up", zap.String("task_id", taskID), zap.String("volunteer_id", volunteerID))
	return task, nil
}

func (s *Service) CancelSignUp(_ context.Context, taskID, volunteerID string) (*dto.CancelSignUpResponseDTO, error) {
	task, promoted, err := s.store.CancelTaskSignUp(taskID, volunteerID)
	if err != nil {
		return nil, err
	}
	if promoted != "" {
		metrics.Promotion()
		zap.L().Info("promoted from waitlist", zap.String("task_id", taskID), zap.String("volunteer_id", promoted))
	}
	return &dto.CancelSignUpResponseDTO{Task: task, Promoted: promoted}, nil
}

func (s *Service) JoinWaitlist(_ context.Context, taskID, volunteerID string) (domain.Task, error) {
	return s.store.JoinActiveWaitlist(taskID, volunteerID)
}

func (s *Service) LeaveWaitlist(_ context.Context, taskID, volunteerID string) (domain.Task, error) {
	return s.store.LeaveWaitlist(taskID, volunteerID)
}

func (s *Service) Create(_ context.Context, req dto.TaskRequestDTO) (domain.Task, error) {
	task, err := s.store.CreateTask(req.Task(""))
	if err != nil {
		zap.L().Info("can't create task", zap.Error(err))
		return domain.Task{}, err
	}
	zap.L().Info("task created", zap.String("task_id", task.ID))
	return task, nil
}

func (s *Service) Update(_ context.Context, taskID string, req dto.TaskRequestDTO) (domain.Task, error) {
	task, err := s.store.UpdateTask(req.Task(taskID))
	if err != nil {
		zap.L().Info("can't update task", zap.String("task_id", taskID), zap.Error(err))
		return domain.Task{}, err
	}
	return task, nil
}

func (s *Service) Delete(_ context.Context, taskID string) error {
	return s.store.DeleteTask(taskID)
}

// Complete pays out the task reward once. Completed and cancelled tasks are
// refused with ErrTaskClosed.
func (s *Service) Complete(_ context.Context, taskID string) (*dto.CompleteTaskResponseDTO, error) {
	task, payouts, err := s.store.CompleteOpenTask(taskID)
	if errors.Is(err, ErrTaskClosed) {
		zap.L().Info("task already closed", zap.String("task_id", taskID), zap.String("status", string(task.Status)))
		return nil, err
	}
	if err != nil {
		zap.L().Error("can't complete task", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}

	metrics.TaskCompleted()
	for _, tx := range payouts {
		metrics.CreditsEarned(tx.Amount)
		s.store.Notify(tx.UserID, domain.NotificationCredit, "Credits earned",
			fmt.Sprintf("You earned %d credits for %q.", tx.Amount, task.Title))
	}
	zap.L().Info("task completed", zap.String("task_id", taskID), zap.Int("payouts", len(payouts)))

	return &dto.CompleteTaskResponseDTO{Task: task, Transactions: payouts}, nil
}
