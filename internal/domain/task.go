package domain

import (
	"errors"
	"fmt"
	"slices"
)

var ErrTaskInvariant = errors.New("task invariant violated")

// CheckInvariants verifies capacity and membership rules: assigned never exceeds
// capacity, neither list repeats an id, and no id sits in both lists.
func (t Task) CheckInvariants() error {
	if len(t.AssignedVolunteerIDs) > t.MaxVolunteers {
		return fmt.Errorf("%w: task %s has %d assigned over capacity %d",
			ErrTaskInvariant, t.ID, len(t.AssignedVolunteerIDs), t.MaxVolunteers)
	}
	assigned := make(map[string]struct{}, len(t.AssignedVolunteerIDs))
	for _, id := range t.AssignedVolunteerIDs {
		if _, dup := assigned[id]; dup {
			return fmt.Errorf("%w: task %s assigns %s twice", ErrTaskInvariant, t.ID, id)
		}
		assigned[id] = struct{}{}
	}
	waiting := make(map[string]struct{}, len(t.WaitlistVolunteerIDs))
	for _, id := range t.WaitlistVolunteerIDs {
		if _, dup := waiting[id]; dup {
			return fmt.Errorf("%w: task %s waitlists %s twice", ErrTaskInvariant, t.ID, id)
		}
		if _, both := assigned[id]; both {
			return fmt.Errorf("%w: task %s has %s assigned and waitlisted", ErrTaskInvariant, t.ID, id)
		}
		waiting[id] = struct{}{}
	}
	return nil
}

func (t Task) IsAssigned(volunteerID string) bool {
	return slices.Contains(t.AssignedVolunteerIDs, volunteerID)
}

func (t Task) IsWaitlisted(volunteerID string) bool {
	return slices.Contains(t.WaitlistVolunteerIDs, volunteerID)
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	t.AssignedVolunteerIDs = append([]string{}, t.AssignedVolunteerIDs...)
	t.WaitlistVolunteerIDs = append([]string{}, t.WaitlistVolunteerIDs...)
	return t
}
