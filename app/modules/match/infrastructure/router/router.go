// Package matchrouter registers the match module's event handlers on the
// shared watermill router.
package matchrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/dannynotsmart/Ranked-Bedwars/app/eventbus"
	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	matchservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/application"
	matchhandlers "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/handlers"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// Configure registers the match handlers.
func Configure(router *message.Router, bus eventbus.EventBus, service matchservice.Service, logger *slog.Logger, tracer trace.Tracer) {
	handlers := matchhandlers.NewMatchHandlers(service)
	deps := handlerwrapper.Deps{Logger: logger, Tracer: tracer, Publisher: bus}

	router.AddNoPublisherHandler(
		"match.score.submit",
		events.MatchScoreSubmissionRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("match.score.submit", deps, handlers.HandleSubmitScore),
	)
}
