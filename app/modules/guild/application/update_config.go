package guildservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
)

// ErrNoConfigChanges indicates an update request with no fields set.
var ErrNoConfigChanges = errors.New("no configuration changes requested")

// UpdateGuildConfig applies a partial configuration update. Nil fields in
// the request are left untouched.
func (s *GuildService) UpdateGuildConfig(ctx context.Context, update *events.GuildConfigUpdateRequestedPayload) (GuildOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "guild.UpdateGuildConfig")
	defer span.End()

	if update == nil || update.GuildID == "" {
		return guildFailureResult("", ErrInvalidGuildID), ErrInvalidGuildID
	}

	if update.QueueCategoryID == nil && update.MatchCategoryID == nil &&
		update.ScorerRoleID == nil && update.LogChannelID == nil {
		return guildFailureResult(update.GuildID, ErrNoConfigChanges), ErrNoConfigChanges
	}

	guild, err := s.GuildDB.UpdateGuild(ctx, update.GuildID, &guilddb.GuildUpdateFields{
		QueueCategoryID: update.QueueCategoryID,
		MatchCategoryID: update.MatchCategoryID,
		ScorerRoleID:    update.ScorerRoleID,
		LogChannelID:    update.LogChannelID,
	})
	if err != nil {
		return guildFailureResult(update.GuildID, err), err
	}

	s.logger.Info("guild config updated", slog.String("guild_id", string(update.GuildID)))

	return GuildOperationResult{
		Success: &events.GuildConfigUpdatedPayload{
			GuildID: update.GuildID,
			Config:  configPayload(guild),
		},
	}, nil
}
