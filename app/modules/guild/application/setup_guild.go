package guildservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// SetupGuild onboards a guild with default (unconfigured) settings. Setup is
// idempotent: onboarding an existing guild returns its current configuration.
func (s *GuildService) SetupGuild(ctx context.Context, guildID sharedtypes.GuildID) (GuildOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "guild.SetupGuild")
	defer span.End()

	if guildID == "" {
		return guildFailureResult(guildID, ErrInvalidGuildID), ErrInvalidGuildID
	}

	guild := &guilddb.Guild{GuildID: guildID}
	err := s.GuildDB.CreateGuild(ctx, guild)
	switch {
	case err == nil:
		s.logger.Info("guild onboarded", slog.String("guild_id", string(guildID)))
	case errors.Is(err, guilddb.ErrGuildAlreadyExists):
		existing, getErr := s.GuildDB.GetGuild(ctx, guildID)
		if getErr != nil {
			return guildFailureResult(guildID, getErr), getErr
		}
		guild = existing
	default:
		return guildFailureResult(guildID, err), err
	}

	return GuildOperationResult{
		Success: &events.GuildSetupCompletedPayload{
			GuildID: guildID,
			Config:  configPayload(guild),
		},
	}, nil
}

func configPayload(guild *guilddb.Guild) events.GuildConfigPayload {
	return events.GuildConfigPayload{
		QueueCategoryID: guild.QueueCategoryID,
		MatchCategoryID: guild.MatchCategoryID,
		ScorerRoleID:    guild.ScorerRoleID,
		LogChannelID:    guild.LogChannelID,
	}
}

func guildFailureResult(guildID sharedtypes.GuildID, err error) GuildOperationResult {
	return GuildOperationResult{
		Failure: &events.GuildFailedPayload{
			GuildID: guildID,
			Reason:  err.Error(),
		},
		Error: err,
	}
}
