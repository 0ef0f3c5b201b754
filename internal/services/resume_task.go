package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

type ResumeTask struct {
	transition
}

func NewResumeTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *ResumeTask {
	return &ResumeTask{transition{op: "resume task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *ResumeTask) Execute(ctx context.Context, req TaskActionRequest) Response[*task.Task] {
	return uc.run(ctx, req, nil, func(t *task.Task, by *member.Member) result.Result[bool] {
		return t.Resume(by.AssigneeID())
	})
}
