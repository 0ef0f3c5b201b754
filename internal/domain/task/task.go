// Package task holds the Task aggregate: a noted piece of work owned by one
// member and assigned to one member, moved through its lifecycle by
// transitions that are each gated by a specification.
package task

import (
	"time"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/result"
	apperr "task-collab.com/task-collab/internal/errors"
)

var now = func() time.Time { return time.Now().UTC() }

// Task is mutated in place by its transitions. The lifecycle flags are
// independent; timestamps are historical markers and are never cleared.
type Task struct {
	events.Recorder

	id          identity.TaskID
	description Description
	ownerID     identity.OwnerID
	assigneeID  identity.AssigneeID

	tickedOff   bool
	tickedOffAt *time.Time
	resumedAt   *time.Time
	archived    bool
	archivedAt  *time.Time
	discarded   bool
	discardedAt *time.Time
	editedAt    *time.Time
	createdAt   time.Time
}

// Note creates a fresh task owned by owner and assigned to assignee.
func Note(description Description, owner identity.OwnerID, assignee identity.AssigneeID) *Task {
	t := &Task{
		id:          identity.NewTaskID(),
		description: description,
		ownerID:     owner,
		assigneeID:  assignee,
		createdAt:   now(),
	}
	t.Record(events.New(events.TaskNoted, t.id.String(), t.createdAt, notedPayload{
		Description: description.String(),
		OwnerID:     owner.String(),
		AssigneeID:  assignee.String(),
	}))
	return t
}

func (t *Task) ID() identity.TaskID             { return t.id }
func (t *Task) Description() Description        { return t.description }
func (t *Task) OwnerID() identity.OwnerID       { return t.ownerID }
func (t *Task) AssigneeID() identity.AssigneeID { return t.assigneeID }
func (t *Task) IsTickedOff() bool               { return t.tickedOff }
func (t *Task) TickedOffAt() *time.Time         { return t.tickedOffAt }
func (t *Task) ResumedAt() *time.Time           { return t.resumedAt }
func (t *Task) IsArchived() bool                { return t.archived }
func (t *Task) ArchivedAt() *time.Time          { return t.archivedAt }
func (t *Task) IsDiscarded() bool               { return t.discarded }
func (t *Task) DiscardedAt() *time.Time         { return t.discardedAt }
func (t *Task) EditedAt() *time.Time            { return t.editedAt }
func (t *Task) CreatedAt() time.Time            { return t.createdAt }

// IsActive reports whether the task shows up in its members' active lists.
func (t *Task) IsActive() bool {
	return !t.archived && !t.discarded
}

// The transitions below share one contract: the authorization rule is
// checked first, then an already-applied transition succeeds with false and
// leaves the task untouched. A true value means the task changed and must
// be saved.

func (t *Task) TickOff(by identity.AssigneeID) result.Result[bool] {
	if !OnlyAssigneeCanTickOffTask(t).SatisfiedBy(by) {
		return t.forbid("only its assignee can tick it off")
	}
	if t.tickedOff {
		return result.Ok(false)
	}
	at := now()
	t.tickedOff = true
	t.tickedOffAt = &at
	t.Record(events.New(events.TaskTickedOff, t.id.String(), at, actorPayload{MemberID: by.String()}))
	return result.Ok(true)
}

func (t *Task) Resume(by identity.AssigneeID) result.Result[bool] {
	if !OnlyAssigneeCanResumeTask(t).SatisfiedBy(by) {
		return t.forbid("only its assignee can resume it")
	}
	if !t.tickedOff {
		return result.Ok(false)
	}
	at := now()
	t.tickedOff = false
	t.resumedAt = &at
	t.Record(events.New(events.TaskResumed, t.id.String(), at, actorPayload{MemberID: by.String()}))
	return result.Ok(true)
}

func (t *Task) Archive(by identity.OwnerID) result.Result[bool] {
	if !MemberMustBeTaskOwner(t).SatisfiedBy(by) {
		return t.forbid("only its owner can archive it")
	}
	if t.archived {
		return result.Ok(false)
	}
	at := now()
	t.archived = true
	t.archivedAt = &at
	t.Record(events.New(events.TaskArchived, t.id.String(), at, actorPayload{MemberID: by.String()}))
	return result.Ok(true)
}

func (t *Task) Discard(by identity.OwnerID) result.Result[bool] {
	if !MemberMustBeTaskOwner(t).SatisfiedBy(by) {
		return t.forbid("only its owner can discard it")
	}
	if t.discarded {
		return result.Ok(false)
	}
	at := now()
	t.discarded = true
	t.discardedAt = &at
	t.Record(events.New(events.TaskDiscarded, t.id.String(), at, actorPayload{MemberID: by.String()}))
	return result.Ok(true)
}

func (t *Task) Edit(description Description, by identity.OwnerID) result.Result[bool] {
	if !MemberMustBeTaskOwner(t).SatisfiedBy(by) {
		return t.forbid("only its owner can edit it")
	}
	if t.description.Equals(description) {
		return result.Ok(false)
	}
	at := now()
	t.description = description
	t.editedAt = &at
	t.Record(events.New(events.TaskEdited, t.id.String(), at, editedPayload{
		MemberID:    by.String(),
		Description: description.String(),
	}))
	return result.Ok(true)
}

func (t *Task) Assign(by identity.OwnerID, to identity.AssigneeID) result.Result[bool] {
	if !OnlyOwnerCanAssignTask(t).SatisfiedBy(by) {
		return t.forbid("only its owner can assign it")
	}
	if !MemberHasNotYetBeenAssigned(t).SatisfiedBy(to) {
		return result.Ok(false)
	}
	previous := t.assigneeID
	t.assigneeID = to
	t.Record(events.New(events.TaskAssigned, t.id.String(), now(), assignedPayload{
		OwnerID:            by.String(),
		PreviousAssigneeID: previous.String(),
		AssigneeID:         to.String(),
	}))
	return result.Ok(true)
}

func (t *Task) forbid(rule string) result.Result[bool] {
	return result.Fail[bool](apperr.Forbidden("task %s: %s", t.id, rule))
}
