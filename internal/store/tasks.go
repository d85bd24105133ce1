package store

import (
	"fmt"

	"github.com/GlebRadaev/clubcredits/internal/domain"
)

func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out
}

func (s *Store) Task(id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.taskIndex(id)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// UserTasks lists the tasks the user is assigned to.
func (s *Store) UserTasks(userID string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0)
	for _, t := range s.tasks {
		if t.IsAssigned(userID) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// SignUpForTask assigns the volunteer when the task exists, the volunteer is not
// yet assigned and there is room. A waitlisted volunteer leaves the waitlist.
func (s *Store) SignUpForTask(taskID, volunteerID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	return s.signUp(&s.tasks[i], volunteerID)
}

// SignUpForOpenTask is SignUpForTask restricted to open tasks, checked under
// the same lock as the assignment.
func (s *Store) SignUpForOpenTask(taskID, volunteerID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	t := &s.tasks[i]
	if t.Status != domain.TaskOpen {
		return t.Clone(), ErrNotOpen
	}
	return s.signUp(t, volunteerID)
}

func (s *Store) signUp(t *domain.Task, volunteerID string) (domain.Task, error) {
	if t.IsAssigned(volunteerID) {
		return t.Clone(), ErrAlreadyAssigned
	}
	if t.IsFull() {
		return t.Clone(), ErrTaskFull
	}

	t.AssignedVolunteerIDs = append(t.AssignedVolunteerIDs, volunteerID)
	if t.IsWaitlisted(volunteerID) {
		t.WaitlistVolunteerIDs = removeID(t.WaitlistVolunteerIDs, volunteerID)
	}
	return t.Clone(), nil
}

// CancelTaskSignUp removes the volunteer from the assigned list. When the
// waitlist is not empty and there is a vacancy, the head of the waitlist is
// promoted and notified. At most one volunteer is promoted per call; the
// promoted id is returned, empty when nobody moved up.
func (s *Store) CancelTaskSignUp(taskID, volunteerID string) (domain.Task, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, "", ErrTaskNotFound
	}
	t := &s.tasks[i]
	t.AssignedVolunteerIDs = removeID(t.AssignedVolunteerIDs, volunteerID)

	if len(t.WaitlistVolunteerIDs) == 0 || t.IsFull() {
		return t.Clone(), "", nil
	}

	promoted := t.WaitlistVolunteerIDs[0]
	t.WaitlistVolunteerIDs = append([]string{}, t.WaitlistVolunteerIDs[1:]...)
	t.AssignedVolunteerIDs = append(t.AssignedVolunteerIDs, promoted)

	s.notifications = append(s.notifications, domain.Notification{
		ID:        s.newID("notif"),
		UserID:    promoted,
		Title:     "Waitlist promotion",
		Message:   fmt.Sprintf("You have been assigned to %q from the waitlist!", t.Title),
		CreatedAt: s.now(),
		Type:      domain.NotificationTask,
	})
	return t.Clone(), promoted, nil
}

// JoinWaitlist queues the volunteer unless already assigned or queued. The
// waitlist has no capacity.
func (s *Store) JoinWaitlist(taskID, volunteerID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	return s.joinWaitlist(&s.tasks[i], volunteerID)
}

// JoinActiveWaitlist refuses completed and cancelled tasks with ErrTaskClosed.
func (s *Store) JoinActiveWaitlist(taskID, volunteerID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	t := &s.tasks[i]
	if closed(*t) {
		return t.Clone(), ErrTaskClosed
	}
	return s.joinWaitlist(t, volunteerID)
}

func (s *Store) joinWaitlist(t *domain.Task, volunteerID string) (domain.Task, error) {
	if t.IsAssigned(volunteerID) {
		return t.Clone(), ErrAlreadyAssigned
	}
	if t.IsWaitlisted(volunteerID) {
		return t.Clone(), ErrAlreadyWaitlisted
	}
	t.WaitlistVolunteerIDs = append(t.WaitlistVolunteerIDs, volunteerID)
	return t.Clone(), nil
}

func (s *Store) LeaveWaitlist(taskID, volunteerID string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	t := &s.tasks[i]
	t.WaitlistVolunteerIDs = removeID(t.WaitlistVolunteerIDs, volunteerID)
	return t.Clone(), nil
}

// CreateTask stores task under a fresh id, in front of the existing ones.
func (s *Store) CreateTask(task domain.Task) (domain.Task, error) {
	task = task.Clone()
	task.ID = s.newID("task")
	if err := task.CheckInvariants(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]domain.Task{task}, s.tasks...)
	return task.Clone(), nil
}

// UpdateTask replaces the task with the same id. The template link of the
// stored task is kept.
func (s *Store) UpdateTask(task domain.Task) (domain.Task, error) {
	task = task.Clone()
	if err := task.CheckInvariants(); err != nil {
		return domain.Task{}, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(task.ID)
	if i < 0 {
		return domain.Task{}, ErrTaskNotFound
	}
	task.TemplateID = s.tasks[i].TemplateID
	s.tasks[i] = task
	return task.Clone(), nil
}

func (s *Store) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func closed(t domain.Task) bool {
	return t.Status == domain.TaskCompleted || t.Status == domain.TaskCancelled
}
