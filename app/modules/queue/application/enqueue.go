package queueservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Enqueue admits a player to the guild's waiting pool. The profile is
// created lazily on first entry at the configured starting rating. Banned
// players, players already waiting, and players locked into an ongoing
// match are rejected; the pool is left untouched on every failure path.
func (s *QueueService) Enqueue(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string) (QueueOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "queue.Enqueue")
	defer span.End()

	unlock := s.locks.Lock(guildID)
	defer unlock()

	guild, err := s.GuildDB.GetGuild(ctx, guildID)
	if err != nil {
		if errors.Is(err, guilddb.ErrGuildNotFound) {
			err = guildservice.ErrGuildNotConfigured
		}
		return queueFailureResult(guildID, userID, err), err
	}
	if !guild.IsConfigured() {
		err := guildservice.ErrGuildNotConfigured
		return queueFailureResult(guildID, userID, err), err
	}

	user, err := s.UserDB.EnsureUser(ctx, guildID, userID, username, sharedtypes.Rating(s.cfg.StartingRating))
	if err != nil {
		return queueFailureResult(guildID, userID, err), err
	}

	if user.Banned {
		err := fmt.Errorf("%w: banned", ErrNotQueueable)
		return queueFailureResult(guildID, userID, err), err
	}
	if s.pool.Contains(guildID, userID) {
		err := fmt.Errorf("%w: already queued", ErrNotQueueable)
		return queueFailureResult(guildID, userID, err), err
	}

	inMatch, err := s.MatchDB.HasOngoingMatch(ctx, guildID, userID)
	if err != nil {
		return queueFailureResult(guildID, userID, err), err
	}
	if inMatch {
		err := fmt.Errorf("%w: already in an ongoing match", ErrNotQueueable)
		return queueFailureResult(guildID, userID, err), err
	}

	s.pool.Add(guildID, userID)
	size := s.pool.Size(guildID)
	s.metrics.QueueDepth.WithLabelValues(string(guildID)).Set(float64(size))

	s.logger.Info("player queued",
		slog.String("guild_id", string(guildID)),
		slog.String("user_id", string(userID)),
		slog.Int("pool_size", size),
	)

	return QueueOperationResult{
		Success: &events.QueuePlayerJoinedPayload{
			GuildID:  guildID,
			UserID:   userID,
			PoolSize: size,
		},
	}, nil
}

func queueFailureResult(guildID sharedtypes.GuildID, userID sharedtypes.UserID, err error) QueueOperationResult {
	return QueueOperationResult{
		Failure: &events.QueueFailedPayload{
			GuildID: guildID,
			UserID:  userID,
			Reason:  err.Error(),
		},
		Error: err,
	}
}
