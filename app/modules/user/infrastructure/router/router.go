// Package userrouter registers the user module's event handlers on the
// shared watermill router.
package userrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/dannynotsmart/Ranked-Bedwars/app/eventbus"
	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	userservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/application"
	userhandlers "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/handlers"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// Configure registers the user handlers.
func Configure(router *message.Router, bus eventbus.EventBus, service userservice.Service, logger *slog.Logger, tracer trace.Tracer) {
	handlers := userhandlers.NewUserHandlers(service)
	deps := handlerwrapper.Deps{Logger: logger, Tracer: tracer, Publisher: bus}

	router.AddNoPublisherHandler(
		"user.ban",
		events.UserBanRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("user.ban", deps, handlers.HandleBanUser),
	)
	router.AddNoPublisherHandler(
		"user.unban",
		events.UserUnbanRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("user.unban", deps, handlers.HandleUnbanUser),
	)
}
