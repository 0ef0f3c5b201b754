package queue

import (
	"context"
	"time"

	"github.com/redis/rueidis"

	"task-collab.com/task-collab/internal/domain/events"
)

// RedisStreamSink appends events to a Redis stream, one entry per event.
type RedisStreamSink struct {
	client rueidis.Client
	key    string
}

func NewRedisStreamSink(client rueidis.Client, streamKey string) *RedisStreamSink {
	return &RedisStreamSink{
		client: client,
		key:    streamKey,
	}
}

func (r *RedisStreamSink) Write(ctx context.Context, e events.Event) error {
	cmd := r.client.B().Xadd().Key(r.key).Id("*").FieldValue().
		FieldValue("id", e.ID).
		FieldValue("name", string(e.Name)).
		FieldValue("aggregate_id", e.AggregateID).
		FieldValue("occurred_at", e.OccurredAt.UTC().Format(time.RFC3339Nano)).
		FieldValue("payload", string(e.Payload)).
		Build()
	return r.client.Do(ctx, cmd).Error()
}

