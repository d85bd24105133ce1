package taskservice

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/clubcredits/internal/domain"
	"github.com/GlebRadaev/clubcredits/internal/dto"
	"github.com/GlebRadaev/clubcredits/internal/fixtures"
	"github.com/GlebRadaev/clubcredits/internal/store"
)

func NewTest(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	snap, err := fixtures.Load()
	require.NoError(t, err)
	st := store.New(snap)
	return New(st), st
}

func TestList(t *testing.T) {
	service, _ := NewTest(t)

	tests := []struct {
		name     string
		filter   dto.TaskFilterDTO
		expected []string
	}{
		{
			name:     "No filter",
			expected: []string{"task-1", "task-2", "task-3", "task-4", "task-5", "task-6"},
		},
		{
			name:     "Open only",
			filter:   dto.TaskFilterDTO{Status: domain.TaskOpen},
			expected: []string{"task-1", "task-2", "task-4"},
		},
		{
			name:     "Open bar tasks",
			filter:   dto.TaskFilterDTO{Status: domain.TaskOpen, Category: domain.CategoryBar},
			expected: []string{"task-1"},
		},
		{
			name:     "Nothing matches",
			filter:   dto.TaskFilterDTO{Status: domain.TaskCompleted, Category: domain.CategoryBar},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := service.List(context.Background(), tt.filter)
			ids := make([]string, 0, len(tasks))
			for _, task := range tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name        string
		taskID      string
		volunteerID string
		expectedErr error
	}{
		{name: "Open task with room", taskID: "task-1", volunteerID: "vol-3"},
		{name: "Full task", taskID: "task-2", volunteerID: "vol-6", expectedErr: store.ErrTaskFull},
		{name: "Already assigned", taskID: "task-1", volunteerID: "vol-1", expectedErr: store.ErrAlreadyAssigned},
		{name: "In progress task", taskID: "task-5", volunteerID: "vol-1", expectedErr: ErrNotOpen},
		{name: "Cancelled task", taskID: "task-6", volunteerID: "vol-1", expectedErr: ErrNotOpen},
		{name: "Unknown task", taskID: "task-99", volunteerID: "vol-1", expectedErr: store.ErrTaskNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := NewTest(t)
			task, err := service.SignUp(context.Background(), tt.taskID, tt.volunteerID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, task.AssignedVolunteerIDs, tt.volunteerID)
		})
	}
}

func TestCancelSignUp_Promotes(t *testing.T) {
	service, st := NewTest(t)

	resp, err := service.CancelSignUp(context.Background(), "task-2", "vol-4")
	require.NoError(t, err)

	assert.Equal(t, "vol-3", resp.Promoted)
	assert.Equal(t, []string{"vol-5", "vol-3"}, resp.Task.AssignedVolunteerIDs)
	assert.Empty(t, resp.Task.WaitlistVolunteerIDs)

	notes := st.UserNotifications("vol-3")
	require.Len(t, notes, 1)
	assert.Equal(t, "Waitlist promotion", notes[0].Title)
}

func TestWaitlist(t *testing.T) {
	service, _ := NewTest(t)
	ctx := context.Background()

	task, err := service.JoinWaitlist(ctx, "task-2", "vol-7")
	require.NoError(t, err)
	assert.Equal(t, []string{"vol-3", "vol-7"}, task.WaitlistVolunteerIDs)

	_, err = service.JoinWaitlist(ctx, "task-3", "vol-7")
	assert.ErrorIs(t, err, ErrTaskClosed)

	task, err = service.LeaveWaitlist(ctx, "task-2", "vol-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"vol-7"}, task.WaitlistVolunteerIDs)
}

func TestComplete(t *testing.T) {
	service, st := NewTest(t)
	ctx := context.Background()

	before, err := st.Volunteer("vol-1")
	require.NoError(t, err)

	resp, err := service.Complete(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, resp.Task.Status)
	require.Len(t, resp.Transactions, 2)

	after, err := st.Volunteer("vol-1")
	require.NoError(t, err)
	assert.Equal(t, before.CreditBalance+15, after.CreditBalance)
	assert.Equal(t, before.TasksCompleted+1, after.TasksCompleted)

	notes := st.UserNotifications("vol-2")
	require.NotEmpty(t, notes)
	assert.Equal(t, domain.NotificationCredit, notes[len(notes)-1].Type)

	_, err = service.Complete(ctx, "task-1")
	assert.ErrorIs(t, err, ErrTaskClosed)

	again, err := st.Volunteer("vol-1")
	require.NoError(t, err)
	assert.Equal(t, after.CreditBalance, again.CreditBalance, "no second payout")

	_, err = service.Complete(ctx, "task-6")
	assert.ErrorIs(t, err, ErrTaskClosed)

	_, err = service.Complete(ctx, "task-99")
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	service, _ := NewTest(t)
	ctx := context.Background()

	req := dto.TaskRequestDTO{
		Title:         "Line painting",
		Category:      domain.CategoryMaintenance,
		CreditReward:  20,
		Date:          "2026-04-11",
		StartTime:     "09:00",
		EndTime:       "12:00",
		MaxVolunteers: 2,
	}
	created, err := service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskOpen, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.AssignedVolunteerIDs)

	req.MaxVolunteers = 1
	req.AssignedVolunteerIDs = []string{"vol-1", "vol-2"}
	_, err = service.Update(ctx, created.ID, req)
	assert.ErrorIs(t, err, store.ErrInvalidTask)

	req.AssignedVolunteerIDs = []string{"vol-1"}
	updated, err := service.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"vol-1"}, updated.AssignedVolunteerIDs)

	require.NoError(t, service.Delete(ctx, created.ID))
	_, err = service.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestUserTasks(t *testing.T) {
	service, _ := NewTest(t)

	tasks := service.UserTasks(context.Background(), "vol-4")
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-2", tasks[0].ID)
	assert.Equal(t, "task-3", tasks[1].ID)
}

// barrierStore holds every caller of the wrapped store method until n of them
// have arrived.
type barrierStore struct {
	*store.Store
	arrived sync.WaitGroup
}

func newBarrierStore(st *store.Store, n int) *barrierStore {
	b := &barrierStore{Store: st}
	b.arrived.Add(n)
	return b
}

func (b *barrierStore) CompleteOpenTask(taskID string) (domain.Task, []domain.Transaction, error) {
	b.arrived.Done()
	b.arrived.Wait()
	return b.Store.CompleteOpenTask(taskID)
}

func TestComplete_Concurrent(t *testing.T) {
	_, st := NewTest(t)
	service := New(newBarrierStore(st, 2))
	before, err := st.Volunteer("vol-1")
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Complete(context.Background(), "task-1")
		}(i)
	}
	wg.Wait()

	oks := 0
	for _, err := range errs {
		if err == nil {
			oks++
			continue
		}
		assert.ErrorIs(t, err, ErrTaskClosed)
	}
	assert.Equal(t, 1, oks)

	earned := 0
	for _, tx := range st.Transactions() {
		if tx.RelatedID == "task-1" && tx.Type == domain.TransactionEarned {
			earned++
		}
	}
	assert.Equal(t, 2, earned)

	after, err := st.Volunteer("vol-1")
	require.NoError(t, err)
	assert.Equal(t, before.TasksCompleted+1, after.TasksCompleted)
}

func TestUpdate_KeepsTemplateLink(t *testing.T) {
	service, st := NewTest(t)
	generated, err := st.GenerateFromTemplate("tmpl-1", []string{"2026-04-04"})
	require.NoError(t, err)
	task := generated[0]

	updated, err := service.Update(context.Background(), task.ID, dto.TaskRequestDTO{
		Title:         "Bar duty (club finals)",
		Category:      task.Category,
		CreditReward:  task.CreditReward,
		Date:          task.Date,
		StartTime:     task.StartTime,
		EndTime:       task.EndTime,
		MaxVolunteers: task.MaxVolunteers,
	})
	require.NoError(t, err)

	assert.Equal(t, "tmpl-1", updated.TemplateID)
	assert.True(t, st.HasGeneratedTask("tmpl-1", "2026-04-04"))
}
