package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
)

type fixture struct {
	tasks     *memoryTasks
	members   *memoryMembers
	comments  *memoryComments
	publisher *recordingPublisher
	service   *TaskService
}

func newFixture() *fixture {
	f := &fixture{
		tasks:     newMemoryTasks(),
		members:   newMemoryMembers(),
		comments:  &memoryComments{},
		publisher: &recordingPublisher{},
	}
	f.service = NewTaskService(f.tasks, f.members, f.comments, f.publisher)
	return f
}

// user registers a member for a fresh user and returns the user id the
// transport layer would pass along.
func (f *fixture) user(t *testing.T) (string, *member.Member) {
	t.Helper()
	userID := identity.NewUserID().String()
	resp := f.service.RegisterMember.Execute(context.Background(), RegisterMemberRequest{UserID: userID})
	require.True(t, resp.IsRight(), "register member: %v", resp)
	return userID, resp.RightValue()
}

func (f *fixture) note(t *testing.T, userID, description string) *task.Task {
	t.Helper()
	resp := f.service.NoteTask.Execute(context.Background(), NoteTaskRequest{UserID: userID, Description: description})
	require.True(t, resp.IsRight(), "note task: %v", resp)
	return resp.RightValue()
}

func requireKind[T any](t *testing.T, resp Response[T], kind apperr.Kind) *apperr.Exception {
	t.Helper()
	require.True(t, resp.IsLeft(), "expected %s failure", kind)
	exc := resp.LeftValue()
	require.Equal(t, kind, exc.Kind, exc.Message)
	return exc
}
