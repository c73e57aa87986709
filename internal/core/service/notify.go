package service

import (
	"context"
	"time"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
	"github.com/fooddelivery/restaurant-api/internal/core/ports"
	"github.com/fooddelivery/restaurant-api/internal/core/security"
)

// eventSink raises post-commit events. A nil notifier discards them.
type eventSink struct {
	notifier ports.Notifier
	now      func() time.Time
}

func newEventSink(n ports.Notifier) eventSink {
	return eventSink{notifier: n, now: time.Now}
}

func (s eventSink) emit(ctx context.Context, kind domain.EventKind, id int64, name string) {
	if s.notifier == nil {
		return
	}
	var actor string
	if p, ok := security.PrincipalFrom(ctx); ok {
		actor = p.Subject
	}
	s.notifier.Notify(ctx, domain.Event{
		Kind:     kind,
		EntityID: id,
		Name:     name,
		Actor:    actor,
		At:       s.now().UTC(),
	})
}
