package queue

import (
	"context"
	"errors"

	"github.com/labstack/gommon/log"

	"task-collab.com/task-collab/internal/domain/events"
)

// Sink writes a single event to its final destination.
type Sink interface {
	Write(ctx context.Context, e events.Event) error
}

var ErrQueueFull = errors.New("event queue is full")

// LogSink only logs events. It is used when Redis is disabled.
type LogSink struct{}

func (LogSink) Write(_ context.Context, e events.Event) error {
	log.Infof("event %s %s aggregate=%s", e.Name, e.ID, e.AggregateID)
	return nil
}
