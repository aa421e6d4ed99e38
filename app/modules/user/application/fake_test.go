package userservice

import (
	"context"

	"github.com/uptrace/bun"

	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// FakeUserRepository provides a programmable stub for the userdb.UserDB
// interface.
type FakeUserRepository struct {
	trace []string

	GetUserFunc            func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error)
	EnsureUserFunc         func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*userdb.User, error)
	SetBannedFunc          func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*userdb.User, error)
	LeaderboardFunc        func(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error)
	GetUsersFunc           func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*userdb.User, error)
	ApplyRatingChangesFunc func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []userdb.RatingChange) error
}

func (f *FakeUserRepository) GetUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error) {
	f.trace = append(f.trace, "GetUser")
	return f.GetUserFunc(ctx, guildID, userID)
}

func (f *FakeUserRepository) EnsureUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*userdb.User, error) {
	f.trace = append(f.trace, "EnsureUser")
	return f.EnsureUserFunc(ctx, guildID, userID, username, startingRating)
}

func (f *FakeUserRepository) SetBanned(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*userdb.User, error) {
	f.trace = append(f.trace, "SetBanned")
	return f.SetBannedFunc(ctx, guildID, userID, banned)
}

func (f *FakeUserRepository) Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error) {
	f.trace = append(f.trace, "Leaderboard")
	return f.LeaderboardFunc(ctx, guildID, limit)
}

func (f *FakeUserRepository) GetUsers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*userdb.User, error) {
	f.trace = append(f.trace, "GetUsers")
	return f.GetUsersFunc(ctx, idb, guildID, userIDs)
}

func (f *FakeUserRepository) ApplyRatingChanges(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []userdb.RatingChange) error {
	f.trace = append(f.trace, "ApplyRatingChanges")
	return f.ApplyRatingChangesFunc(ctx, idb, guildID, changes)
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeUserRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}
