// Package events defines the domain event envelope, the per-aggregate
// queue of pending events and the port used to hand them off.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Name string

const (
	TaskNoted        Name = "TaskNoted"
	TaskTickedOff    Name = "TaskTickedOff"
	TaskResumed      Name = "TaskResumed"
	TaskEdited       Name = "TaskEdited"
	TaskArchived     Name = "TaskArchived"
	TaskDiscarded    Name = "TaskDiscarded"
	TaskAssigned     Name = "TaskAssigned"
	CommentWritten   Name = "CommentWritten"
	MemberRegistered Name = "MemberRegistered"
)

// Event represents a change applied to an aggregate.
type Event struct {
	ID          string          `json:"id"`
	Name        Name            `json:"name"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// New builds an event. Payloads are plain structs with json tags so
// marshalling cannot fail; a failure here is a programming error.
func New(name Name, aggregateID string, occurredAt time.Time, payload any) Event {
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			panic("events: unmarshalable payload for " + string(name) + ": " + err.Error())
		}
		raw = b
	}
	return Event{
		ID:          uuid.NewString(),
		Name:        name,
		AggregateID: aggregateID,
		OccurredAt:  occurredAt,
		Payload:     raw,
	}
}

// Recorder is embedded by aggregates to queue events produced by their
// mutations until a use case drains them after a successful save.
type Recorder struct {
	pending []Event
}

func (r *Recorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

// PullEvents returns the queued events and empties the queue.
func (r *Recorder) PullEvents() []Event {
	pulled := r.pending
	r.pending = nil
	return pulled
}

// Source is anything that queues events.
type Source interface {
	PullEvents() []Event
}

// Publisher delivers drained events to the outside world.
type Publisher interface {
	Publish(ctx context.Context, batch []Event) error
}

// PublisherFunc adapts a function into a Publisher.
type PublisherFunc func(ctx context.Context, batch []Event) error

func (f PublisherFunc) Publish(ctx context.Context, batch []Event) error {
	return f(ctx, batch)
}

// Discard is a Publisher that drops everything.
var Discard Publisher = PublisherFunc(func(context.Context, []Event) error { return nil })
