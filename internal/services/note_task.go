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

type NoteTaskRequest struct {
	UserID      string
	Description string
}

// NoteTask creates a task owned by and assigned to the acting member.
type NoteTask struct {
	tasks     task.Repository
	members   member.Repository
	publisher events.Publisher
}

func NewNoteTask(tasks task.Repository, members member.Repository, publisher events.Publisher) *NoteTask {
	return &NoteTask{tasks: tasks, members: members, publisher: publisher}
}

func (uc *NoteTask) Execute(ctx context.Context, req NoteTaskRequest) (resp Response[*task.Task]) {
	const op = "note task"
	defer guard(op, &resp)

	userID := identity.ParseUserID(req.UserID)
	description := task.NewDescription(req.Description)
	if validated := result.Combine(userID, description); validated.IsFailure() {
		return failWith[*task.Task](op, validated.Error())
	}

	by, exc, err := actor{members: uc.members}.find(ctx, userID.Value())
	if err != nil {
		return unexpected[*task.Task](op, err)
	}
	if exc != nil {
		return fail[*task.Task](exc)
	}

	t := task.Note(description.Value(), by.OwnerID(), by.AssigneeID())

	if err := uc.tasks.Save(ctx, t); err != nil {
		return unexpected[*task.Task](op, fmt.Errorf("save task %s: %w", t.ID(), err))
	}

	publish(ctx, uc.publisher, op, t)
	return succeed(t)
}
