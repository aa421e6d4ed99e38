package userdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// RatingChange is one player's rating and counter movement at finalization.
type RatingChange struct {
	UserID      sharedtypes.UserID
	NewRating   sharedtypes.Rating
	WinsDelta   int
	LossesDelta int
	DrawsDelta  int
}

// UserDB is the repository for per-guild user profiles.
type UserDB interface {
	GetUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*User, error)
	// EnsureUser creates the profile on first queue entry; an existing
	// profile is returned unchanged.
	EnsureUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*User, error)
	SetBanned(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*User, error)
	Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*User, error)
	// GetUsers loads profiles for the given IDs in one query. It runs on
	// the passed IDB so finalization reads the same snapshot it writes.
	GetUsers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*User, error)
	// ApplyRatingChanges updates ratings and outcome counters. It runs on
	// the passed IDB so match finalization can include it in one
	// transaction.
	ApplyRatingChanges(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []RatingChange) error
}
