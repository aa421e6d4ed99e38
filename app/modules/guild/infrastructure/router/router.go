// Package guildrouter registers the guild module's event handlers on the
// shared watermill router.
package guildrouter

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	"github.com/dannynotsmart/Ranked-Bedwars/app/eventbus"
	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	guildhandlers "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/handlers"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// Configure registers the guild handlers.
func Configure(router *message.Router, bus eventbus.EventBus, service guildservice.Service, logger *slog.Logger, tracer trace.Tracer) {
	handlers := guildhandlers.NewGuildHandlers(service)
	deps := handlerwrapper.Deps{Logger: logger, Tracer: tracer, Publisher: bus}

	router.AddNoPublisherHandler(
		"guild.setup",
		events.GuildSetupRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("guild.setup", deps, handlers.HandleSetupGuild),
	)
	router.AddNoPublisherHandler(
		"guild.config.update",
		events.GuildConfigUpdateRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("guild.config.update", deps, handlers.HandleUpdateGuildConfig),
	)
	router.AddNoPublisherHandler(
		"guild.teardown",
		events.GuildTeardownRequested,
		bus.Subscriber(),
		handlerwrapper.Wrap("guild.teardown", deps, handlers.HandleTeardownGuild),
	)
}
