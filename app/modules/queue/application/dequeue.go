package queueservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Dequeue removes a waiting player from the guild's pool. Dequeuing a player
// who is not waiting is a safe no-op, unless they are locked into an ongoing
// match, which is reported as ErrNotQueued: once formed, the player set of a
// match is fixed.
func (s *QueueService) Dequeue(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (QueueOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "queue.Dequeue")
	defer span.End()

	unlock := s.locks.Lock(guildID)
	defer unlock()

	if !s.pool.Remove(guildID, userID) {
		inMatch, err := s.MatchDB.HasOngoingMatch(ctx, guildID, userID)
		if err != nil {
			return queueFailureResult(guildID, userID, err), err
		}
		if inMatch {
			err := fmt.Errorf("%w: locked into a formed match", ErrNotQueued)
			return queueFailureResult(guildID, userID, err), err
		}
		// Not waiting and not playing: nothing to do.
	}

	size := s.pool.Size(guildID)
	s.metrics.QueueDepth.WithLabelValues(string(guildID)).Set(float64(size))

	s.logger.Info("player dequeued",
		slog.String("guild_id", string(guildID)),
		slog.String("user_id", string(userID)),
		slog.Int("pool_size", size),
	)

	return QueueOperationResult{
		Success: &events.QueuePlayerLeftPayload{
			GuildID:  guildID,
			UserID:   userID,
			PoolSize: size,
		},
	}, nil
}
