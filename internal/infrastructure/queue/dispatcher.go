package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/api/metrics"
	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// HandlerFunc consumes one committed event on a worker goroutine.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// Dispatcher fans post-commit events out to a fixed set of workers using
// consistent hashing on the event key, so events of one entity are handled in
// the order they were raised.
type Dispatcher struct {
	workers []chan domain.Event
	handle  HandlerFunc
	log     zerolog.Logger
	dropped atomic.Int64
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used. A nil handler logs each event.
func NewDispatcher(numWorkers int, handle HandlerFunc, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if handle == nil {
		handle = LogHandler(log)
	}
	d := &Dispatcher{
		workers: make([]chan domain.Event, numWorkers),
		handle:  handle,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.Event, channelBuffer)
	}
	return d
}

// LogHandler records each event as a structured log entry.
func LogHandler(log zerolog.Logger) HandlerFunc {
	return func(_ context.Context, e domain.Event) error {
		log.Info().
			Str("kind", string(e.Kind)).
			Int64("entity_id", e.EntityID).
			Str("name", e.Name).
			Str("actor", e.Actor).
			Time("at", e.At).
			Msg("notification")
		return nil
	}
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands the event to the worker responsible for its key. It never
// blocks: when that worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Notify(_ context.Context, event domain.Event) {
	idx := d.shardIndex(event.Key())
	select {
	case d.workers[idx] <- event:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.dropped.Add(1)
		metrics.NotificationsDroppedTotal.WithLabelValues(string(event.Kind)).Inc()
		d.log.Warn().
			Str("kind", string(event.Kind)).
			Int64("entity_id", event.EntityID).
			Int("worker_id", idx).
			Msg("notification dropped: queue full")
	}
}

// Dropped returns the number of events discarded since the dispatcher was created.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// shardIndex maps an event key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.Event) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.handle(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(event.Kind)).
					Int64("entity_id", event.EntityID).
					Int("worker_id", id).
					Msg("notification handling failed")
				continue
			}
			metrics.NotificationsDeliveredTotal.WithLabelValues(string(event.Kind)).Inc()
		}
	}
}
