package queue

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
)

var _ ports.Notifier = (*Dispatcher)(nil)

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
	done   chan struct{}
	want   int
}

func newRecorder(want int) *recorder {
	return &recorder{done: make(chan struct{}), want: want}
}

func (r *recorder) handle(_ context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if len(r.events) == r.want {
		close(r.done)
	}
	return nil
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", r.want)
	}
}

func TestDispatcher_PreservesPerEntityOrder(t *testing.T) {
	const perEntity = 50
	rec := newRecorder(perEntity * 3)
	d := NewDispatcher(4, rec.handle, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < perEntity; i++ {
		for _, id := range []int64{1, 2, 3} {
			d.Notify(ctx, domain.Event{Kind: domain.EventOrderUpdated, EntityID: id, Name: string(rune('a' + i%26))})
		}
	}
	rec.wait(t)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	seq := map[int64]int{}
	for _, e := range rec.events {
		want := string(rune('a' + seq[e.EntityID]%26))
		if e.Name != want {
			t.Fatalf("entity %d: event %d out of order: got %q want %q", e.EntityID, seq[e.EntityID], e.Name, want)
		}
		seq[e.EntityID]++
	}
}

func TestDispatcher_SameKeySameWorker(t *testing.T) {
	d := NewDispatcher(8, func(context.Context, domain.Event) error { return nil }, zerolog.Nop())

	a := domain.Event{Kind: domain.EventOrderAdded, EntityID: 42}
	b := domain.Event{Kind: domain.EventOrderUpdated, EntityID: 42}
	if d.shardIndex(a.Key()) != d.shardIndex(b.Key()) {
		t.Fatalf("added and updated events of one order must share a worker")
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	d := NewDispatcher(1, func(context.Context, domain.Event) error { return nil }, zerolog.Nop())

	// Workers not started: the single buffer fills up and the rest is dropped.
	for i := 0; i < channelBuffer+3; i++ {
		d.Notify(context.Background(), domain.Event{Kind: domain.EventDishAdded, EntityID: int64(i)})
	}
	if got := d.Dropped(); got != 3 {
		t.Fatalf("expected 3 dropped events, got %d", got)
	}
}

func TestDispatcher_DefaultsAndLogHandler(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	d := NewDispatcher(0, nil, log)
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}

	err := d.handle(context.Background(), domain.Event{
		Kind: domain.EventUserAdded, EntityID: 7, Name: "davidw", Actor: "1", At: time.Now(),
	})
	if err != nil {
		t.Fatalf("log handler: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"kind":"user.added"`) || !strings.Contains(out, `"entity_id":7`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestDispatcher_StopsOnCancel(t *testing.T) {
	rec := newRecorder(1)
	d := NewDispatcher(1, rec.handle, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	d.Notify(ctx, domain.Event{Kind: domain.EventDishUpdated, EntityID: 1})
	rec.wait(t)
	cancel()
}
