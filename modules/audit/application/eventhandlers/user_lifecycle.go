// Package eventhandlers contains the audit module's event subscriptions.
package eventhandlers

import (
	"context"
	"log/slog"

	"github.com/mzukov/web-api/modules/shared/events"
)

// UserLifecycleHandler records user lifecycle events to the audit log.
// It only observes; failures here must never affect the write that
// produced the event.
type UserLifecycleHandler struct {
	logger *slog.Logger
}

func NewUserLifecycleHandler(logger *slog.Logger) *UserLifecycleHandler {
	return &UserLifecycleHandler{logger: logger}
}

// Handle writes one structured audit record per event.
func (h *UserLifecycleHandler) Handle(ctx context.Context, event events.Event) error {
	h.logger.Info("user lifecycle event",
		slog.String("event_type", event.EventType().String()),
		slog.String("user_id", event.AggregateID()),
		slog.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}
