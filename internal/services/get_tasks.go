package services

import (
	"context"
	"fmt"

	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/task"
)

type GetTasksRequest struct {
	UserID string
}

// GetActiveTasks lists tasks the member owns or is assigned to that are
// neither archived nor discarded.
type GetActiveTasks struct {
	tasks   task.Repository
	members member.Repository
}

func NewGetActiveTasks(tasks task.Repository, members member.Repository) *GetActiveTasks {
	return &GetActiveTasks{tasks: tasks, members: members}
}

func (uc *GetActiveTasks) Execute(ctx context.Context, req GetTasksRequest) Response[[]*task.Task] {
	return listTasks(ctx, "get active tasks", uc.members, req, uc.tasks.GetAllActiveTasksOfMember)
}

// GetArchivedTasks lists archived, not discarded tasks the member owns.
type GetArchivedTasks struct {
	tasks   task.Repository
	members member.Repository
}

func NewGetArchivedTasks(tasks task.Repository, members member.Repository) *GetArchivedTasks {
	return &GetArchivedTasks{tasks: tasks, members: members}
}

func (uc *GetArchivedTasks) Execute(ctx context.Context, req GetTasksRequest) Response[[]*task.Task] {
	return listTasks(ctx, "get archived tasks", uc.members, req, uc.tasks.GetAllArchivedTasksOfMember)
}

type taskQuery func(ctx context.Context, id identity.MemberID) ([]*task.Task, error)

func listTasks(ctx context.Context, op string, members member.Repository, req GetTasksRequest, query taskQuery) (resp Response[[]*task.Task]) {
	defer guard(op, &resp)

	userID := identity.ParseUserID(req.UserID)
	if userID.IsFailure() {
		return failWith[[]*task.Task](op, userID.Error())
	}

	by, exc, err := actor{members: members}.find(ctx, userID.Value())
	if err != nil {
		return unexpected[[]*task.Task](op, err)
	}
	if exc != nil {
		return fail[[]*task.Task](exc)
	}

	tasks, err := query(ctx, by.ID())
	if err != nil {
		return unexpected[[]*task.Task](op, fmt.Errorf("list tasks of member %s: %w", by.ID(), err))
	}
	return succeed(tasks)
}
