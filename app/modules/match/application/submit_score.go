package matchservice

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/retry"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// SubmitScore finalizes a match. The status flip, score write, and every
// participant's rating movement commit in one serializable transaction, so a
// concurrent duplicate submission either sees the finalized row or loses the
// serialization race and retries into ErrMatchAlreadyFinalized. Ratings move
// uniformly per team, with a draw worth half a win; win and loss counters
// move only on a decisive outcome.
func (s *MatchService) SubmitScore(ctx context.Context, sub ScoreSubmission) (MatchOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "match.SubmitScore")
	defer span.End()

	if sub.Team1Score < 0 || sub.Team2Score < 0 {
		err := ErrInvalidScore
		return matchFailureResult(sub, err), err
	}

	guild, err := s.GuildDB.GetGuild(ctx, sub.GuildID)
	if err != nil {
		if errors.Is(err, guilddb.ErrGuildNotFound) {
			err = guildservice.ErrGuildNotConfigured
		}
		return matchFailureResult(sub, err), err
	}
	if !s.isScorer(guild, sub.SubmitterRoles) {
		err := ErrNotScorer
		return matchFailureResult(sub, err), err
	}

	outcome := sharedtypes.OutcomeFromScores(sub.Team1Score, sub.Team2Score)
	endedAt := time.Now().UTC()

	var (
		match         *matchdb.Match
		playerResults []events.PlayerResultPayload
		deltaA        int
		deltaB        int
	)

	err = retry.Do(ctx, s.retry, s.logger, "submit_score", func(ctx context.Context) error {
		return s.MatchDB.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
			m, err := s.MatchDB.GetMatch(ctx, tx, sub.GuildID, sub.MatchID)
			if err != nil {
				return err
			}
			if !m.IsOngoing() {
				return matchdb.ErrMatchAlreadyFinalized
			}

			players, err := s.MatchDB.GetMatchPlayers(ctx, tx, sub.GuildID, sub.MatchID)
			if err != nil {
				return err
			}

			userIDs := make([]sharedtypes.UserID, 0, len(players))
			for _, p := range players {
				userIDs = append(userIDs, p.UserID)
			}
			profiles, err := s.UserDB.GetUsers(ctx, tx, sub.GuildID, userIDs)
			if err != nil {
				return err
			}
			ratings := make(map[sharedtypes.UserID]sharedtypes.Rating, len(profiles))
			for _, profile := range profiles {
				ratings[profile.UserID] = profile.Rating
			}

			var teamA, teamB []sharedtypes.Rating
			for _, p := range players {
				if p.Team == sharedtypes.TeamOne {
					teamA = append(teamA, ratings[p.UserID])
				} else {
					teamB = append(teamB, ratings[p.UserID])
				}
			}

			deltaA, deltaB = ratingDeltas(teamA, teamB, outcome, s.cfg.KFactor, s.cfg.RatingScale)

			changes := make([]userdb.RatingChange, 0, len(players))
			playerResults = playerResults[:0]
			for _, p := range players {
				before := ratings[p.UserID]
				delta := deltaA
				won := outcome == sharedtypes.OutcomeTeamOneWin
				lost := outcome == sharedtypes.OutcomeTeamTwoWin
				if p.Team == sharedtypes.TeamTwo {
					delta = deltaB
					won, lost = lost, won
				}
				after := before + sharedtypes.Rating(delta)

				change := userdb.RatingChange{UserID: p.UserID, NewRating: after}
				if won {
					change.WinsDelta = 1
				}
				if lost {
					change.LossesDelta = 1
				}
				if outcome == sharedtypes.OutcomeDraw && s.cfg.CountDraws {
					change.DrawsDelta = 1
				}
				changes = append(changes, change)
				playerResults = append(playerResults, events.PlayerResultPayload{
					UserID:       p.UserID,
					Team:         p.Team,
					RatingBefore: before,
					RatingAfter:  after,
				})
			}

			final := &matchdb.Finalization{
				Team1Score: sub.Team1Score,
				Team2Score: sub.Team2Score,
				ScoredBy:   sub.SubmitterID,
				EndedAt:    endedAt,
			}
			if err := s.MatchDB.FinalizeMatch(ctx, tx, sub.GuildID, sub.MatchID, final); err != nil {
				return err
			}
			if err := s.UserDB.ApplyRatingChanges(ctx, tx, sub.GuildID, changes); err != nil {
				return err
			}
			match = m
			return nil
		})
	})
	if err != nil {
		return matchFailureResult(sub, err), err
	}

	s.metrics.MatchesFinalized.WithLabelValues(string(sub.GuildID), string(outcome)).Inc()
	s.metrics.RatingDelta.Observe(math.Abs(float64(deltaA)))
	s.metrics.RatingDelta.Observe(math.Abs(float64(deltaB)))

	s.logger.Info("match finalized",
		slog.String("guild_id", string(sub.GuildID)),
		slog.Int64("match_id", int64(sub.MatchID)),
		slog.String("outcome", string(outcome)),
		slog.Int("team1_delta", deltaA),
		slog.Int("team2_delta", deltaB),
	)

	return MatchOperationResult{
		Success: &events.MatchFinalizedPayload{
			GuildID:        sub.GuildID,
			MatchID:        sub.MatchID,
			VoiceChannelID: match.VoiceChannelID,
			TextChannelID:  match.TextChannelID,
			Team1Score:     sub.Team1Score,
			Team2Score:     sub.Team2Score,
			Outcome:        outcome,
			ScoredBy:       sub.SubmitterID,
			EndedAt:        endedAt,
			Team1Delta:     deltaA,
			Team2Delta:     deltaB,
			Players:        playerResults,
			LogChannelID:   guild.LogChannelID,
		},
	}, nil
}

func (s *MatchService) isScorer(guild *guilddb.Guild, roles []sharedtypes.RoleID) bool {
	if guild.ScorerRoleID == "" {
		return false
	}
	for _, role := range roles {
		if role == guild.ScorerRoleID {
			return true
		}
	}
	return false
}

func matchFailureResult(sub ScoreSubmission, err error) MatchOperationResult {
	return MatchOperationResult{
		Failure: &events.MatchScoreSubmissionFailedPayload{
			GuildID:     sub.GuildID,
			MatchID:     sub.MatchID,
			SubmitterID: sub.SubmitterID,
			Reason:      err.Error(),
		},
		Error: err,
	}
}
