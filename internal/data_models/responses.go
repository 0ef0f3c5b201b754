package dto

import (
	"time"

	"task-collab.com/task-collab/internal/domain/comment"
	"task-collab.com/task-collab/internal/domain/task"
)

type TaskResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	OwnerID     string     `json:"owner_id"`
	AssigneeID  string     `json:"assignee_id"`
	TickedOff   bool       `json:"ticked_off"`
	TickedOffAt *time.Time `json:"ticked_off_at,omitempty"`
	ResumedAt   *time.Time `json:"resumed_at,omitempty"`
	Archived    bool       `json:"archived"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	Discarded   bool       `json:"discarded"`
	DiscardedAt *time.Time `json:"discarded_at,omitempty"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TaskListResponse struct {
	Count int            `json:"count"`
	Tasks []TaskResponse `json:"tasks"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Count    int               `json:"count"`
	Comments []CommentResponse `json:"comments"`
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID().String(),
		Description: t.Description().String(),
		OwnerID:     t.OwnerID().String(),
		AssigneeID:  t.AssigneeID().String(),
		TickedOff:   t.IsTickedOff(),
		TickedOffAt: t.TickedOffAt(),
		ResumedAt:   t.ResumedAt(),
		Archived:    t.IsArchived(),
		ArchivedAt:  t.ArchivedAt(),
		Discarded:   t.IsDiscarded(),
		DiscardedAt: t.DiscardedAt(),
		EditedAt:    t.EditedAt(),
		CreatedAt:   t.CreatedAt(),
	}
}

func FromTasks(tasks []*task.Task) TaskListResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return TaskListResponse{Count: len(out), Tasks: out}
}

func FromComment(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID().String(),
		TaskID:    c.TaskID().String(),
		AuthorID:  c.AuthorID().String(),
		Text:      c.Text().String(),
		CreatedAt: c.CreatedAt(),
	}
}

func FromComments(comments []*comment.Comment) CommentListResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromComment(c))
	}
	return CommentListResponse{Count: len(out), Comments: out}
}
