package guildservice

import (
	"context"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// GetGuildConfig retrieves the guild's configuration.
func (s *GuildService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "guild.GetGuildConfig")
	defer span.End()

	if guildID == "" {
		return guildFailureResult(guildID, ErrInvalidGuildID), ErrInvalidGuildID
	}

	guild, err := s.GuildDB.GetGuild(ctx, guildID)
	if err != nil {
		return guildFailureResult(guildID, err), err
	}

	return GuildOperationResult{
		Success: &events.GuildSetupCompletedPayload{
			GuildID: guildID,
			Config:  configPayload(guild),
		},
	}, nil
}
