package services

import (
	"context"
	"fmt"

	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/task"
)

type GetTaskComments struct {
	tasks    task.Repository
	members  member.Repository
	comments comment.Repository
}

func NewGetTaskComments(tasks task.Repository, members member.Repository, comments comment.Repository) *GetTaskComments {
	return &GetTaskComments{tasks: tasks, members: members, comments: comments}
}

func (uc *GetTaskComments) Execute(ctx context.Context, req TaskActionRequest) (resp Response[[]*comment.Comment]) {
	const op = "get task comments"
	defer guard(op, &resp)

	readable := readableTask(ctx, op, uc.tasks, uc.members, req)
	if readable.IsLeft() {
		return fail[[]*comment.Comment](readable.LeftValue())
	}
	t := readable.RightValue()

	comments, err := uc.comments.GetCommentsOfTask(ctx, t.ID())
	if err != nil {
		return unexpected[[]*comment.Comment](op, fmt.Errorf("list comments of task %s: %w", t.ID(), err))
	}
	return succeed(comments)
}
