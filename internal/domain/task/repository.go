package task

import (
	"context"

	"task-collab.com/task-collab/internal/domain/identity"
)

// Repository is the persistence port for tasks. Errors returned here are
// infrastructure failures; a missing task is reported through found.
type Repository interface {
	Exists(ctx context.Context, id identity.TaskID) (bool, error)
	Save(ctx context.Context, t *Task) error
	GetTaskByID(ctx context.Context, id identity.TaskID) (t *Task, found bool, err error)
	// GetAllActiveTasksOfMember lists tasks the member owns or is assigned
	// to that are neither archived nor discarded.
	GetAllActiveTasksOfMember(ctx context.Context, id identity.MemberID) ([]*Task, error)
	// GetAllArchivedTasksOfMember lists archived, not discarded tasks the
	// member owns.
	GetAllArchivedTasksOfMember(ctx context.Context, id identity.MemberID) ([]*Task, error)
}
