package services

import (
	"context"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
)

type EditTaskRequest struct {
	UserID      string
	TaskID      string
	Description string
}

type EditTask struct {
	transition
}

func NewEditTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *EditTask {
	return &EditTask{transition{op: "edit task", tasks: tasks, members: members, publisher: publisher}}
}

func (uc *EditTask) Execute(ctx context.Context, req EditTaskRequest) Response[*task.Task] {
	description := task.NewDescription(req.Description)
	action := TaskActionRequest{UserID: req.UserID, TaskID: req.TaskID}

	return uc.run(ctx, action, []result.Outcome{description}, func(t *task.Task, by *member.Member) result.Result[bool] {
		return t.Edit(description.Value(), by.OwnerID())
	})
}
