package services

import (
	"context"
	"fmt"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
)

type AssignTaskRequest struct {
	UserID string
	TaskID string
	// AssigneeID is the member id of the new assignee.
	AssigneeID string
}

type AssignTask struct {
	transition
}

func NewAssignTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *AssignTask {
	return &AssignTask{transition{op: "assign task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *AssignTask) Execute(ctx context.Context, req AssignTaskRequest) Response[*task.Task] {
	assignee := identity.ParseMemberID(req.AssigneeID)
	action := TaskActionRequest{UserID: req.UserID, TaskID: req.TaskID}

	return uc.run(ctx, action, []result.Outcome{assignee}, func(t *task.Task, by *member.Member) result.Result[bool] {
		// authorize before revealing whether the target member exists
		if !task.OnlyOwnerCanAssignTask(t).SatisfiedBy(by.OwnerID()) {
			return t.Assign(by.OwnerID(), identity.AssigneeOf(assignee.Value()))
		}
		exists, err := uc.members.Exists(ctx, assignee.Value())
		if err != nil {
			// not an exception, so the runner reports it as unexpected
			return result.Fail[bool](fmt.Errorf("check member %s: %w", assignee.Value(), err))
		}
		if !exists {
			return result.Fail[bool](apperr.NotFound("member", assignee.Value().String()))
		}
		return t.Assign(by.OwnerID(), identity.AssigneeOf(assignee.Value()))
	})
}
