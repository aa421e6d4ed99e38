package guildservice

import (
	"context"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// TeardownGuild deletes a guild row. The schema's cascade constraints remove
// every dependent user, match, and match player row with it.
func (s *GuildService) TeardownGuild(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "guild.TeardownGuild")
	defer span.End()

	if guildID == "" {
		return guildFailureResult(guildID, ErrInvalidGuildID), ErrInvalidGuildID
	}

	if err := s.GuildDB.DeleteGuild(ctx, guildID); err != nil {
		return guildFailureResult(guildID, err), err
	}

	s.logger.Info("guild torn down", slog.String("guild_id", string(guildID)))

	return GuildOperationResult{
		Success: &events.GuildTeardownCompletedPayload{GuildID: guildID},
	}, nil
}
