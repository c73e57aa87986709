package ports

import (
	"context"

	"github.com/fooddelivery/restaurant-api/internal/core/domain"
)

// Notifier receives post-commit events. Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event)
}
