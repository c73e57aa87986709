package domain

import (
	"strconv"
	"strings"
	"time"
)

// EventKind identifies a committed write that interested parties are told about.
type EventKind string

const (
	EventUserAdded    EventKind = "user.added"
	EventUserUpdated  EventKind = "user.updated"
	EventOrderAdded   EventKind = "order.added"
	EventOrderUpdated EventKind = "order.updated"
	EventDishAdded    EventKind = "dish.added"
	EventDishUpdated  EventKind = "dish.updated"
)

// Event is emitted after a write has been persisted.
type Event struct {
	Kind     EventKind
	EntityID int64
	Name     string
	Actor    string
	At       time.Time
}

// Key groups events of the same entity so they are delivered in order.
func (e Event) Key() string {
	entity, _, _ := strings.Cut(string(e.Kind), ".")
	return entity + ":" + strconv.FormatInt(e.EntityID, 10)
}
