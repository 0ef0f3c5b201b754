// Package comment holds notes written on a task by its owner or assignee.
// Authorization happens before Write is called.
package comment

import (
	"context"
	"time"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/result"
)

type Comment struct {
	events.Recorder

	id        identity.CommentID
	authorID  identity.AuthorID
	text      Text
	taskID    identity.TaskID
	createdAt time.Time
}

type writtenPayload struct {
	TaskID   string `json:"task_id"`
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
}

func Write(text Text, author identity.AuthorID, taskID identity.TaskID) *Comment {
	c := &Comment{
		id:        identity.NewCommentID(),
		authorID:  author,
		text:      text,
		taskID:    taskID,
		createdAt: time.Now().UTC(),
	}
	c.Record(events.New(events.CommentWritten, c.id.String(), c.createdAt, writtenPayload{
		TaskID:   taskID.String(),
		AuthorID: author.String(),
		Text:     text.String(),
	}))
	return c
}

func (c *Comment) ID() identity.CommentID      { return c.id }
func (c *Comment) AuthorID() identity.AuthorID { return c.authorID }
func (c *Comment) Text() Text                  { return c.text }
func (c *Comment) TaskID() identity.TaskID     { return c.taskID }
func (c *Comment) CreatedAt() time.Time        { return c.createdAt }

type Snapshot struct {
	ID        string
	AuthorID  string
	Text      string
	TaskID    string
	CreatedAt time.Time
}

func (c *Comment) Snapshot() Snapshot {
	return Snapshot{
		ID:        c.id.String(),
		AuthorID:  c.authorID.String(),
		Text:      c.text.String(),
		TaskID:    c.taskID.String(),
		CreatedAt: c.createdAt,
	}
}

func Restore(s Snapshot) result.Result[*Comment] {
	id := identity.ParseCommentID(s.ID)
	author := identity.ParseAuthorID(s.AuthorID)
	text := NewText(s.Text)
	taskID := identity.ParseTaskID(s.TaskID)
	if combined := result.Combine(id, author, text, taskID); combined.IsFailure() {
		return result.Fail[*Comment](combined.Error())
	}
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return result.Ok(&Comment{
		id:        id.Value(),
		authorID:  author.Value(),
		text:      text.Value(),
		taskID:    taskID.Value(),
		createdAt: createdAt,
	})
}

// Repository is the persistence port for comments.
type Repository interface {
	Exists(ctx context.Context, id identity.CommentID) (bool, error)
	Save(ctx context.Context, c *Comment) error
	// GetCommentsOfTask returns comments oldest first.
	GetCommentsOfTask(ctx context.Context, taskID identity.TaskID) ([]*Comment, error)
}
