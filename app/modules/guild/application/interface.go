package guildservice

import (
	"context"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Service defines the interface for guild operations.
type Service interface {
	SetupGuild(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error)
	GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error)
	UpdateGuildConfig(ctx context.Context, update *events.GuildConfigUpdateRequestedPayload) (GuildOperationResult, error)
	TeardownGuild(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error)
}
