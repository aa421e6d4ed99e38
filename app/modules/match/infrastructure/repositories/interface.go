package matchdb

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Finalization is the terminal state written by score submission.
type Finalization struct {
	Team1Score sharedtypes.Score
	Team2Score sharedtypes.Score
	ScoredBy   sharedtypes.UserID
	EndedAt    time.Time
}

// MatchDB is the repository for matches and their player rows.
type MatchDB interface {
	// RunInTx runs fn inside a serializable transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
	// NextMatchID allocates the next match identifier within the guild.
	NextMatchID(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID) (sharedtypes.MatchID, error)
	// CreateMatch inserts the match and its player rows.
	CreateMatch(ctx context.Context, idb bun.IDB, match *Match, players []*MatchPlayer) error
	GetMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (*Match, error)
	GetMatchPlayers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) ([]*MatchPlayer, error)
	// HasOngoingMatch reports whether the user is a participant in an
	// ongoing match in the guild.
	HasOngoingMatch(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error)
	// FinalizeMatch flips the match to finalized. It only touches rows
	// still ongoing; finalizing twice affects zero rows and returns
	// ErrMatchAlreadyFinalized.
	FinalizeMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID, final *Finalization) error
}
