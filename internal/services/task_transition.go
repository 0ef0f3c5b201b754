package services

import (
	"context"
	"fmt"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

// TaskActionRequest identifies the acting user and the task acted on.
type TaskActionRequest struct {
	UserID string
	TaskID string
}

// transition is the shared skeleton of the single-task use cases:
// validate, fetch, authorize and mutate, skip the write when nothing
// changed, save, publish.
type transition struct {
	op        string
	tasks     task.Repository
	members   member.Repository
	publisher events.Publisher
}

type mutation func(t *task.Task, by *member.Member) result.Result[bool]

func (tr transition) run(ctx context.Context, req TaskActionRequest, extra []result.Outcome, mutate mutation) (resp Response[*task.Task]) {
	defer guard(tr.op, &resp)

	userID := identity.ParseUserID(req.UserID)
	taskID := identity.ParseTaskID(req.TaskID)
	outcomes := append([]result.Outcome{userID, taskID}, extra...)
	if validated := result.Combine(outcomes...); validated.IsFailure() {
		return failWith[*task.Task](tr.op, validated.Error())
	}

	by, exc, err := actor{members: tr.members}.find(ctx, userID.Value())
	if err != nil {
		return unexpected[*task.Task](tr.op, err)
	}
	if exc != nil {
		return fail[*task.Task](exc)
	}

	t, exc, err := findTask(ctx, tr.tasks, taskID.Value())
	if err != nil {
		return unexpected[*task.Task](tr.op, err)
	}
	if exc != nil {
		return fail[*task.Task](exc)
	}

	changed := mutate(t, by)
	if changed.IsFailure() {
		return failWith[*task.Task](tr.op, changed.Error())
	}
	if !changed.Value() {
		return succeed(t)
	}

	if err := tr.tasks.Save(ctx, t); err != nil {
		return unexpected[*task.Task](tr.op, fmt.Errorf("save task %s: %w", t.ID(), err))
	}

	publish(ctx, tr.publisher, tr.op, t)
	return succeed(t)
}
