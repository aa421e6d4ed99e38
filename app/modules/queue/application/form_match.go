package queueservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/retry"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// TryFormMatch drains the configured number of players from the guild's
// pool, partitions them into two teams, and persists the match with its
// player rows in one transaction. The whole drain-and-persist sequence runs
// under the guild lock, so two concurrent triggers can never drain
// overlapping players. The pool is only mutated after the transaction
// commits; on any failure the waiting players stay queued.
func (s *QueueService) TryFormMatch(ctx context.Context, guildID sharedtypes.GuildID, channels ChannelAssignment) (QueueOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "queue.TryFormMatch")
	defer span.End()

	unlock := s.locks.Lock(guildID)
	defer unlock()

	matchSize := s.cfg.MatchSize
	queued, ok := s.pool.Peek(guildID, matchSize)
	if !ok {
		err := fmt.Errorf("%w: have %d, need %d", ErrInsufficientPlayers, s.pool.Size(guildID), matchSize)
		return formationFailureResult(guildID, err), err
	}

	startedAt := time.Now().UTC()
	var (
		formed       *matchdb.Match
		teamA, teamB []Player
	)

	err := retry.Do(ctx, s.retry, s.logger, "form_match", func(ctx context.Context) error {
		return s.MatchDB.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			profiles, err := s.UserDB.GetUsers(ctx, tx, guildID, queued)
			if err != nil {
				return err
			}
			ratings := make(map[sharedtypes.UserID]sharedtypes.Rating, len(profiles))
			for _, profile := range profiles {
				ratings[profile.UserID] = profile.Rating
			}

			// Preserve queue-insertion order for deterministic tie-breaking.
			players := make([]Player, 0, len(queued))
			for _, userID := range queued {
				players = append(players, Player{UserID: userID, Rating: ratings[userID]})
			}
			teamA, teamB = Partition(players)

			matchID, err := s.MatchDB.NextMatchID(ctx, tx, guildID)
			if err != nil {
				return err
			}

			match := &matchdb.Match{
				GuildID:        guildID,
				MatchID:        matchID,
				VoiceChannelID: channels.VoiceChannelID,
				TextChannelID:  channels.TextChannelID,
				StartedAt:      startedAt,
				Status:         sharedtypes.MatchStatusOngoing,
			}
			rows := make([]*matchdb.MatchPlayer, 0, len(players))
			for _, player := range teamA {
				rows = append(rows, &matchdb.MatchPlayer{
					GuildID: guildID, MatchID: matchID, UserID: player.UserID, Team: sharedtypes.TeamOne,
				})
			}
			for _, player := range teamB {
				rows = append(rows, &matchdb.MatchPlayer{
					GuildID: guildID, MatchID: matchID, UserID: player.UserID, Team: sharedtypes.TeamTwo,
				})
			}

			if err := s.MatchDB.CreateMatch(ctx, tx, match, rows); err != nil {
				return err
			}
			formed = match
			return nil
		})
	})
	if err != nil {
		return formationFailureResult(guildID, err), err
	}

	s.pool.RemoveAll(guildID, queued)
	s.metrics.QueueDepth.WithLabelValues(string(guildID)).Set(float64(s.pool.Size(guildID)))
	s.metrics.MatchesFormed.WithLabelValues(string(guildID)).Inc()

	s.logger.Info("match formed",
		slog.String("guild_id", string(guildID)),
		slog.Int64("match_id", int64(formed.MatchID)),
		slog.Int("players", len(queued)),
	)

	assignments := make([]events.TeamAssignmentPayload, 0, len(queued))
	for _, player := range teamA {
		assignments = append(assignments, events.TeamAssignmentPayload{
			UserID: player.UserID, Team: sharedtypes.TeamOne, Rating: player.Rating,
		})
	}
	for _, player := range teamB {
		assignments = append(assignments, events.TeamAssignmentPayload{
			UserID: player.UserID, Team: sharedtypes.TeamTwo, Rating: player.Rating,
		})
	}

	return QueueOperationResult{
		Success: &events.MatchFormedPayload{
			GuildID:        guildID,
			MatchID:        formed.MatchID,
			VoiceChannelID: formed.VoiceChannelID,
			TextChannelID:  formed.TextChannelID,
			StartedAt:      formed.StartedAt,
			Players:        assignments,
		},
	}, nil
}

// PoolSize reports the number of waiting players in the guild's pool.
func (s *QueueService) PoolSize(guildID sharedtypes.GuildID) int {
	return s.pool.Size(guildID)
}

// MatchSize returns the configured total players per match.
func (s *QueueService) MatchSize() int {
	return s.cfg.MatchSize
}

func formationFailureResult(guildID sharedtypes.GuildID, err error) QueueOperationResult {
	return QueueOperationResult{
		Failure: &events.MatchFormationFailedPayload{
			GuildID: guildID,
			Reason:  err.Error(),
		},
		Error: err,
	}
}
