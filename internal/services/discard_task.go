package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

// DiscardTask soft-deletes a task; the row stays in storage.
type DiscardTask struct {
	transition
}

func NewDiscardTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *DiscardTask {
	return &DiscardTask{transition{op: "discard task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *DiscardTask) Execute(ctx context.Context, req TaskActionRequest) Response[*task.Task] {
	return uc.run(ctx, req, nil, func(t *task.Task, by *member.Member) result.Result[bool] {
		return t.Discard(by.OwnerID())
	})
}
