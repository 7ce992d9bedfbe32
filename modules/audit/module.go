// Package audit records an audit trail of user lifecycle events.
// It consumes the public event contracts of the users module and has
// no storage or HTTP surface of its own.
package audit

import (
	"log/slog"

	"github.com/mzukov/web-api/modules/audit/application/eventhandlers"
	"github.com/mzukov/web-api/modules/shared/events"
	"github.com/mzukov/web-api/modules/shared/events/contracts"
)

// Module represents the audit module entry point.
type Module struct{}

type Config struct {
	EventSubscriber events.Subscriber
	Logger          *slog.Logger
}

// New initializes the audit module and subscribes to events.
func New(cfg Config) *Module {
	logger := cfg.Logger.With("module", "audit")

	handler := eventhandlers.NewUserLifecycleHandler(logger)

	for _, eventType := range []events.EventType{
		contracts.UserCreatedEventType,
		contracts.UserReplacedEventType,
		contracts.UserDeletedEventType,
	} {
		if err := cfg.EventSubscriber.Subscribe(eventType, handler); err != nil {
			logger.Error("failed to subscribe to event",
				slog.String("event_type", eventType.String()),
				slog.Any("error", err),
			)
		}
	}

	return &Module{}
}
