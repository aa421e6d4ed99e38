package matchservice

import (
	"context"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// ScoreSubmission is a request to finalize a match.
type ScoreSubmission struct {
	GuildID        sharedtypes.GuildID
	MatchID        sharedtypes.MatchID
	Team1Score     sharedtypes.Score
	Team2Score     sharedtypes.Score
	SubmitterID    sharedtypes.UserID
	SubmitterRoles []sharedtypes.RoleID
}

// Service defines the interface for match operations.
type Service interface {
	SubmitScore(ctx context.Context, sub ScoreSubmission) (MatchOperationResult, error)
	GetMatch(ctx context.Context, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (MatchOperationResult, error)
}
