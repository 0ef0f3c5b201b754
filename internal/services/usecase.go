package services

import (
	"context"
	"fmt"

	"github.com/labstack/gommon/log"

	"task-collab.com/task-collab/internal/domain/events"
	"task-collab.com/task-collab/internal/domain/identity"
	"task-collab.com/task-collab/internal/domain/member"
	"task-collab.com/task-collab/internal/domain/result"
	"task-collab.com/task-collab/internal/domain/task"
	apperr "task-collab.com/task-collab/internal/errors"
)

// Response is what every use case returns: a typed failure on the left or
// the payload on the right. Callers switch on the failure's Kind.
type Response[T any] = result.Either[*apperr.Exception, T]

func succeed[T any](value T) Response[T] {
	return result.Right[*apperr.Exception](value)
}

func fail[T any](exc *apperr.Exception) Response[T] {
	return result.Left[*apperr.Exception, T](exc)
}

// failWith turns the error of a failed Result into a response. Results only
// ever carry exceptions; anything else is treated as unexpected.
func failWith[T any](op string, err error) Response[T] {
	if exc, ok := apperr.As(err); ok {
		return fail[T](exc)
	}
	return unexpected[T](op, err)
}

// unexpected logs the infrastructure cause and hides it from the caller.
func unexpected[T any](op string, err error) Response[T] {
	log.Errorf("%s: %v", op, err)
	return fail[T](apperr.Unexpected(err))
}

// guard converts a panic escaping a collaborator into an unexpected failure
// so it never crosses the use case boundary.
func guard[T any](op string, out *Response[T]) {
	if r := recover(); r != nil {
		*out = unexpected[T](op, fmt.Errorf("panic: %v", r))
	}
}

// publish drains the given aggregates and hands their events off. Delivery
// is best effort: a failed hand-off is logged and the use case still succeeds.
func publish(ctx context.Context, publisher events.Publisher, op string, sources ...events.Source) {
	var batch []events.Event
	for _, s := range sources {
		batch = append(batch, s.PullEvents()...)
	}
	if len(batch) == 0 || publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, batch); err != nil {
		log.Warnf("%s: failed to publish %d events: %v", op, len(batch), err)
	}
}

// actor resolves the member acting on behalf of a user.
type actor struct {
	members member.Repository
}

func (a actor) find(ctx context.Context, userID identity.UserID) (*member.Member, *apperr.Exception, error) {
	m, found, err := a.members.GetMemberByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("get member of user %s: %w", userID, err)
	}
	if !found {
		return nil, apperr.NotFound("member", userID.String()), nil
	}
	return m, nil, nil
}

func findTask(ctx context.Context, tasks task.Repository, id identity.TaskID) (*task.Task, *apperr.Exception, error) {
	t, found, err := tasks.GetTaskByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get task %s: %w", id, err)
	}
	if !found {
		return nil, apperr.NotFound("task", id.String()), nil
	}
	return t, nil, nil
}
