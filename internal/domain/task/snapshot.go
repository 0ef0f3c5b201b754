package task

import (
	"time"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/result"
)

// Snapshot is the flat, storage-friendly view of a Task.
type Snapshot struct {
	ID          string
	Description string
	OwnerID     string
	AssigneeID  string
	TickedOff   bool
	TickedOffAt *time.Time
	ResumedAt   *time.Time
	Archived    bool
	ArchivedAt  *time.Time
	Discarded   bool
	DiscardedAt *time.Time
	EditedAt    *time.Time
	CreatedAt   time.Time
}

func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id.String(),
		Description: t.description.String(),
		OwnerID:     t.ownerID.String(),
		AssigneeID:  t.assigneeID.String(),
		TickedOff:   t.tickedOff,
		TickedOffAt: copyTime(t.tickedOffAt),
		ResumedAt:   copyTime(t.resumedAt),
		Archived:    t.archived,
		ArchivedAt:  copyTime(t.archivedAt),
		Discarded:   t.discarded,
		DiscardedAt: copyTime(t.discardedAt),
		EditedAt:    copyTime(t.editedAt),
		CreatedAt:   t.createdAt,
	}
}

// Restore rebuilds a Task from stored fields. No events are recorded.
func Restore(s Snapshot) result.Result[*Task] {
	id := identity.ParseTaskID(s.ID)
	description := NewDescription(s.Description)
	owner := identity.ParseOwnerID(s.OwnerID)
	assignee := identity.ParseAssigneeID(s.AssigneeID)

	if combined := result.Combine(id, description, owner, assignee); combined.IsFailure() {
		return result.Fail[*Task](combined.Error())
	}

	return result.Ok(&Task{
		id:          id.Value(),
		description: description.Value(),
		ownerID:     owner.Value(),
		assigneeID:  assignee.Value(),
		tickedOff:   s.TickedOff,
		tickedOffAt: copyTime(s.TickedOffAt),
		resumedAt:   copyTime(s.ResumedAt),
		archived:    s.Archived,
		archivedAt:  copyTime(s.ArchivedAt),
		discarded:   s.Discarded,
		discardedAt: copyTime(s.DiscardedAt),
		editedAt:    copyTime(s.EditedAt),
		createdAt:   s.CreatedAt,
	})
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
