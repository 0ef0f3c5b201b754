package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

type ArchiveTask struct {
	transition
}

func NewArchiveTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *ArchiveTask {
	return &ArchiveTask{transition{op: "archive task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *ArchiveTask) Execute(ctx context.Context, req TaskActionRequest) Response[*task.Task] {
	return uc.run(ctx, req, nil, func(t *task.Task, by *member.Member) result.Result[bool] {
		return t.Archive(by.OwnerID())
	})
}
