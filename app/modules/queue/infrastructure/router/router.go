// Package queuerouter registers the queue module's event handlers on the
// shared watermill router.
package queuerouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/dannynotsmart/Ranked-Bedwars/app/eventbus"
	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	queueservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/application"
	queuehandlers "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/infrastructure/handlers"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// Configure registers the queue handlers.
func Configure(router *message.Router, bus eventbus.EventBus, service queueservice.Service, logger *slog.Logger, tracer trace.Tracer) {
	handlers := queuehandlers.NewQueueHandlers(service)
	deps := handlerwrapper.Deps{Logger: logger, Tracer: tracer, Publisher: bus}

	router.AddNoPublisherHandler(
		"queue.join",
		events.QueueJoinRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("queue.join", deps, handlers.HandleJoinQueue),
	)
	router.AddNoPublisherHandler(
		"queue.leave",
		events.QueueLeaveRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("queue.leave", deps, handlers.HandleLeaveQueue),
	)
	router.AddNoPublisherHandler(
		"queue.match.form",
		events.MatchFormRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("queue.match.form", deps, handlers.HandleFormMatch),
	)
}
