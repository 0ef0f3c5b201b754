package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-collab.com/task-collab/internal/domain/identity"
	apperr "task-collab.com/task-collab/internal/errors"
)

func TestAssignTaskTwiceSavesOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, a := f.user(t)
	_, b := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := AssignTaskRequest{UserID: userA, TaskID: noted.ID().String(), AssigneeID: b.ID().String()}
	saves := f.tasks.saveCount()

	first := f.service.AssignTask.Execute(ctx, req)
	require.True(t, first.IsRight())
	assert.Equal(t, b.AssigneeID(), first.RightValue().AssigneeID())
	assert.Equal(t, a.OwnerID(), first.RightValue().OwnerID())

	second := f.service.AssignTask.Execute(ctx, req)
	require.True(t, second.IsRight())
	assert.Equal(t, b.AssigneeID(), second.RightValue().AssigneeID())

	assert.Equal(t, saves+1, f.tasks.saveCount())
}

func TestAssignToSelfOnFreshTaskIsNoOp(t *testing.T) {
	f := newFixture()
	userA, a := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	saves := f.tasks.saveCount()

	resp := f.service.AssignTask.Execute(context.Background(), AssignTaskRequest{
		UserID: userA, TaskID: noted.ID().String(), AssigneeID: a.ID().String(),
	})

	require.True(t, resp.IsRight())
	assert.Equal(t, saves, f.tasks.saveCount())
}

func TestAssignToUnknownMember(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	ghost := identity.NewMemberID().String()

	resp := f.service.AssignTask.Execute(context.Background(), AssignTaskRequest{
		UserID: userA, TaskID: noted.ID().String(), AssigneeID: ghost,
	})

	exc := requireKind(t, resp, apperr.KindNotFound)
	assert.Contains(t, exc.Message, ghost)
}

func TestAssignByStrangerToUnknownMemberIsForbidden(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)
	userC, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")

	resp := f.service.AssignTask.Execute(context.Background(), AssignTaskRequest{
		UserID: userC, TaskID: noted.ID().String(), AssigneeID: identity.NewMemberID().String(),
	})

	requireKind(t, resp, apperr.KindForbidden)
}

func TestAssignWithMalformedAssignee(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")

	resp := f.service.AssignTask.Execute(context.Background(), AssignTaskRequest{
		UserID: userA, TaskID: noted.ID().String(), AssigneeID: "someone",
	})

	requireKind(t, resp, apperr.KindValidation)
}
