// Package guildservice implements guild onboarding, configuration, and
// teardown.
package guildservice

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/results"
)

// GuildOperationResult is the outcome of a guild operation. Success and
// Failure carry event payloads from the events package.
type GuildOperationResult = results.OperationResult[any, any]

// GuildService handles guild-related logic.
type GuildService struct {
	GuildDB guilddb.GuildDB
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGuildService creates a new GuildService.
func NewGuildService(db guilddb.GuildDB, logger *slog.Logger, tracer trace.Tracer) Service {
	return &GuildService{
		GuildDB: db,
		logger:  logger,
		tracer:  tracer,
	}
}
