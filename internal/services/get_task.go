package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
)

// GetTask returns a single task to its owner or assignee.
type GetTask struct {
	tasks   task.Repository
	members member.Repository
}

func NewGetTask(tasks task.Repository, members member.Repository) *GetTask {
	return &GetTask{tasks: tasks, members: members}
}

func (uc *GetTask) Execute(ctx context.Context, req TaskActionRequest) Response[*task.Task] {
	return readableTask(ctx, "get task", uc.tasks, uc.members, req)
}

// readableTask fetches a task and checks the actor is its owner or assignee.
func readableTask(ctx context.Context, op string, tasks task.Repository, members member.Repository, req TaskActionRequest) (resp Response[*task.Task]) {
	defer guard(op, &resp)

	userID := identity.ParseUserID(req.UserID)
	taskID := identity.ParseTaskID(req.TaskID)
	if validated := result.Combine(userID, taskID); validated.IsFailure() {
		return failWith[*task.Task](op, validated.Error())
	}

	by, exc, err := actor{members: members}.find(ctx, userID.Value())
	if err != nil {
		return unexpected[*task.Task](op, err)
	}
	if exc != nil {
		return fail[*task.Task](exc)
	}

	t, exc, err := findTask(ctx, tasks, taskID.Value())
	if err != nil {
		return unexpected[*task.Task](op, err)
	}
	if exc != nil {
		return fail[*task.Task](exc)
	}

	if !task.MemberIsOwnerOrAssignee(t).SatisfiedBy(by.ID()) {
		return fail[*task.Task](apperr.Forbidden(
			"task %s: member %s is neither owner nor assignee", t.ID(), by.ID()))
	}
	return succeed(t)
}
