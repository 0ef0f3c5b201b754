package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

type TickOffTask struct {
	transition
}

func NewTickOffTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *TickOffTask {
	return &TickOffTask{transition{op: "tick off task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *TickOffTask) Execute(ctx context.Context, req TaskActionRequest) Response[*task.Task] {
	return uc.run(ctx, req, nil, func(t *task.Task, by *member.Member) result.Result[bool] {
		return t.TickOff(by.AssigneeID())
	})
}
