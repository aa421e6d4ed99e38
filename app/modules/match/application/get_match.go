package matchservice

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// GetMatch retrieves a match and its player rows.
func (s *MatchService) GetMatch(ctx context.Context, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (MatchOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "match.GetMatch")
	defer span.End()

	var (
		match   *matchdb.Match
		players []*matchdb.MatchPlayer
	)
	err := s.MatchDB.RunInTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		m, err := s.MatchDB.GetMatch(ctx, tx, guildID, matchID)
		if err != nil {
			return err
		}
		rows, err := s.MatchDB.GetMatchPlayers(ctx, tx, guildID, matchID)
		if err != nil {
			return err
		}
		match = m
		players = rows
		return nil
	})
	if err != nil {
		return MatchOperationResult{Error: err}, err
	}

	out := make([]events.MatchPlayerPayload, 0, len(players))
	for _, p := range players {
		out = append(out, events.MatchPlayerPayload{UserID: p.UserID, Team: p.Team})
	}

	return MatchOperationResult{
		Success: &events.MatchDetailsPayload{
			GuildID:        match.GuildID,
			MatchID:        match.MatchID,
			VoiceChannelID: match.VoiceChannelID,
			TextChannelID:  match.TextChannelID,
			Status:         match.Status,
			StartedAt:      match.StartedAt,
			EndedAt:        match.EndedAt,
			Team1Score:     match.Team1Score,
			Team2Score:     match.Team2Score,
			ScoredBy:       match.ScoredBy,
			Players:        out,
		},
	}, nil
}
