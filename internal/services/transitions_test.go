package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	apperr "task-collab.com/task-collab/internal/errors"
)

func TestTickOffThenResumeByStranger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	userB, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := TaskActionRequest{UserID: userA, TaskID: noted.ID().String()}

	ticked := f.service.TickOffTask.Execute(ctx, req)
	require.True(t, ticked.IsRight())
	assert.True(t, ticked.RightValue().IsTickedOff())

	resumed := f.service.ResumeTask.Execute(ctx, TaskActionRequest{UserID: userB, TaskID: noted.ID().String()})
	requireKind(t, resumed, apperr.KindForbidden)

	assert.True(t, f.tasks.stored(noted.ID()).TickedOff)
}

func TestTickOffTwiceWritesOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := TaskActionRequest{UserID: userA, TaskID: noted.ID().String()}

	first := f.service.TickOffTask.Execute(ctx, req)
	require.True(t, first.IsRight())
	savesAfterFirst := f.tasks.saveCount()
	tickedAt := *first.RightValue().TickedOffAt()

	second := f.service.TickOffTask.Execute(ctx, req)
	require.True(t, second.IsRight())
	assert.True(t, second.RightValue().IsTickedOff())
	assert.Equal(t, tickedAt, *second.RightValue().TickedOffAt())
	assert.Equal(t, savesAfterFirst, f.tasks.saveCount())

	count := 0
	for _, name := range f.publisher.names() {
		if name == events.TaskTickedOff {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResumeKeepsTickedOffAtInStorage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := TaskActionRequest{UserID: userA, TaskID: noted.ID().String()}

	require.True(t, f.service.TickOffTask.Execute(ctx, req).IsRight())
	resumed := f.service.ResumeTask.Execute(ctx, req)
	require.True(t, resumed.IsRight())

	stored := f.tasks.stored(noted.ID())
	assert.False(t, stored.TickedOff)
	assert.NotNil(t, stored.TickedOffAt)
	assert.NotNil(t, stored.ResumedAt)
}

func TestResumeUntickedTaskIsNoOp(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	saves := f.tasks.saveCount()

	resp := f.service.ResumeTask.Execute(context.Background(), TaskActionRequest{UserID: userA, TaskID: noted.ID().String()})

	require.True(t, resp.IsRight())
	assert.Nil(t, resp.RightValue().ResumedAt())
	assert.Equal(t, saves, f.tasks.saveCount())
}

func TestArchiveTwiceSavesOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := TaskActionRequest{UserID: userA, TaskID: noted.ID().String()}
	saves := f.tasks.saveCount()

	first := f.service.ArchiveTask.Execute(ctx, req)
	require.True(t, first.IsRight())
	assert.True(t, first.RightValue().IsArchived())
	assert.Equal(t, saves+1, f.tasks.saveCount())

	second := f.service.ArchiveTask.Execute(ctx, req)
	require.True(t, second.IsRight())
	assert.True(t, second.RightValue().IsArchived())
	assert.Equal(t, saves+1, f.tasks.saveCount())
}

func TestDiscardTwiceSavesOnce(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	req := TaskActionRequest{UserID: userA, TaskID: noted.ID().String()}
	saves := f.tasks.saveCount()

	require.True(t, f.service.DiscardTask.Execute(ctx, req).IsRight())
	require.True(t, f.service.DiscardTask.Execute(ctx, req).IsRight())

	assert.Equal(t, saves+1, f.tasks.saveCount())
	assert.True(t, f.tasks.stored(noted.ID()).Discarded)
}

func TestEditTask(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	saves := f.tasks.saveCount()

	same := f.service.EditTask.Execute(ctx, EditTaskRequest{UserID: userA, TaskID: noted.ID().String(), Description: "Buy milk"})
	require.True(t, same.IsRight())
	assert.Nil(t, same.RightValue().EditedAt())
	assert.Equal(t, saves, f.tasks.saveCount())

	changed := f.service.EditTask.Execute(ctx, EditTaskRequest{UserID: userA, TaskID: noted.ID().String(), Description: "Buy oat milk"})
	require.True(t, changed.IsRight())
	assert.Equal(t, "Buy oat milk", f.tasks.stored(noted.ID()).Description)
	assert.NotNil(t, f.tasks.stored(noted.ID()).EditedAt)

	invalid := f.service.EditTask.Execute(ctx, EditTaskRequest{UserID: userA, TaskID: noted.ID().String(), Description: "x"})
	requireKind(t, invalid, apperr.KindValidation)
}

func TestOwnerOnlyUseCasesRejectNonOwner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	userB, b := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	taskID := noted.ID().String()
	saves := f.tasks.saveCount()

	requireKind(t, f.service.ArchiveTask.Execute(ctx, TaskActionRequest{UserID: userB, TaskID: taskID}), apperr.KindForbidden)
	requireKind(t, f.service.DiscardTask.Execute(ctx, TaskActionRequest{UserID: userB, TaskID: taskID}), apperr.KindForbidden)
	requireKind(t, f.service.EditTask.Execute(ctx, EditTaskRequest{UserID: userB, TaskID: taskID, Description: "Mine now"}), apperr.KindForbidden)
	requireKind(t, f.service.AssignTask.Execute(ctx, AssignTaskRequest{UserID: userB, TaskID: taskID, AssigneeID: b.ID().String()}), apperr.KindForbidden)

	assert.Equal(t, saves, f.tasks.saveCount())
}

func TestAssigneeOnlyUseCasesRejectOthers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	userA, _ := f.user(t)
	userB, b := f.user(t)
	noted := f.note(t, userA, "Buy milk")
	taskID := noted.ID().String()

	require.True(t, f.service.AssignTask.Execute(ctx, AssignTaskRequest{UserID: userA, TaskID: taskID, AssigneeID: b.ID().String()}).IsRight())

	// the owner handed the task over and may no longer tick it off
	requireKind(t, f.service.TickOffTask.Execute(ctx, TaskActionRequest{UserID: userA, TaskID: taskID}), apperr.KindForbidden)
	require.True(t, f.service.TickOffTask.Execute(ctx, TaskActionRequest{UserID: userB, TaskID: taskID}).IsRight())
	requireKind(t, f.service.ResumeTask.Execute(ctx, TaskActionRequest{UserID: userA, TaskID: taskID}), apperr.KindForbidden)
}

func TestTransitionOnUnknownTask(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)
	missing := identity.NewTaskID().String()

	resp := f.service.ArchiveTask.Execute(context.Background(), TaskActionRequest{UserID: userA, TaskID: missing})

	exc := requireKind(t, resp, apperr.KindNotFound)
	assert.Contains(t, exc.Message, missing)
}

func TestTransitionWithMalformedTaskID(t *testing.T) {
	f := newFixture()
	userA, _ := f.user(t)

	resp := f.service.TickOffTask.Execute(context.Background(), TaskActionRequest{UserID: userA, TaskID: "42"})

	requireKind(t, resp, apperr.KindValidation)
	assert.Zero(t, f.tasks.gets)
}
