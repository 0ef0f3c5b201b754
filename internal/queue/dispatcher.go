package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/labstack/gommon/log"

	"task-collab.com/task-collab/internal/domain/events"
)

// Dispatcher publishes event batches asynchronously. Publish only enqueues;
// a fixed set of workers drains the queue into the sink. It satisfies
// events.Publisher so use cases never wait on Redis.
type Dispatcher struct {
	queue   chan []events.Event
	sink    Sink
	wg      sync.WaitGroup
	closed  atomic.Bool
	mu      sync.RWMutex
	written atomic.Int64
	failed  atomic.Int64
}

var _ events.Publisher = (*Dispatcher)(nil)

func NewDispatcher(sink Sink, workers int, queueSize int) *Dispatcher {
	d := &Dispatcher{
		queue: make(chan []events.Event, queueSize),
		sink:  sink,
	}

	for i := 1; i <= workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Publish enqueues the batch, or returns ErrQueueFull without blocking.
func (d *Dispatcher) Publish(_ context.Context, batch []events.Event) error {
	if len(batch) == 0 {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed.Load() {
		return ErrQueueFull
	}

	select {
	case d.queue <- batch:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) worker(workerID int) {
	defer d.wg.Done()

	log.Debugf("event worker %d started", workerID)

	for batch := range d.queue {
		d.handleBatch(workerID, batch)
	}

	log.Debugf("event worker %d stopped", workerID)
}

func (d *Dispatcher) handleBatch(workerID int, batch []events.Event) {
	ctx := context.Background()

	for _, e := range batch {
		if err := d.sink.Write(ctx, e); err != nil {
			d.failed.Add(1)
			log.Errorf("event worker %d: failed to write %s %s: %v", workerID, e.Name, e.ID, err)
			continue
		}
		d.written.Add(1)
	}
}

// Written and Failed count events handled by the workers so far.
func (d *Dispatcher) Written() int64 { return d.written.Load() }
func (d *Dispatcher) Failed() int64  { return d.failed.Load() }

// Shutdown stops accepting batches and waits for the workers to drain the
// queue, or for ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.mu.Lock()
	if d.closed.Swap(true) {
		d.mu.Unlock()
		return
	}
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("event dispatcher shut down cleanly")
	case <-ctx.Done():
		log.Warn("event dispatcher shutdown timed out")
	}
}
