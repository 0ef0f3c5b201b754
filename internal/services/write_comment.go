package services

import (
	"context"
	"fmt"

	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
)

type WriteCommentRequest struct {
	UserID string
	TaskID string
	Text   string
}

// WriteComment lets the owner or the assignee of a task comment on it.
type WriteComment struct {
	tasks     task.Repository
	members   member.Repository
	comments  comment.Repository
	publisher events.Publisher
}

func NewWriteComment(tasks task.Repository, members member.Repository, comments comment.Repository, publisher events.Publisher) *WriteComment {
	return &WriteComment{tasks: tasks, members: members, comments: comments, publisher: publisher}
}

func (uc *WriteComment) Execute(ctx context.Context, req WriteCommentRequest) (resp Response[*comment.Comment]) {
	const op = "write comment"
	defer guard(op, &resp)

	userID := identity.ParseUserID(req.UserID)
	taskID := identity.ParseTaskID(req.TaskID)
	text := comment.NewText(req.Text)
	if validated := result.Combine(userID, taskID, text); validated.IsFailure() {
		return failWith[*comment.Comment](op, validated.Error())
	}

	by, exc, err := actor{members: uc.members}.find(ctx, userID.Value())
	if err != nil {
		return unexpected[*comment.Comment](op, err)
	}
	if exc != nil {
		return fail[*comment.Comment](exc)
	}

	t, exc, err := findTask(ctx, uc.tasks, taskID.Value())
	if err != nil {
		return unexpected[*comment.Comment](op, err)
	}
	if exc != nil {
		return fail[*comment.Comment](exc)
	}

	if !task.MemberIsOwnerOrAssignee(t).SatisfiedBy(by.ID()) {
		return fail[*comment.Comment](apperr.Forbidden(
			"task %s: member %s is neither owner nor assignee", t.ID(), by.ID()))
	}

	c := comment.Write(text.Value(), by.AuthorID(), t.ID())

	if err := uc.comments.Save(ctx, c); err != nil {
		return unexpected[*comment.Comment](op, fmt.Errorf("save comment %s: %w", c.ID(), err))
	}

	publish(ctx, uc.publisher, op, c)
	return succeed(c)
}
