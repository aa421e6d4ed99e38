package matchservice

import (
	"context"

	"github.com/uptrace/bun"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// FakeGuildRepository provides a programmable stub for the guilddb.GuildDB
// interface.
type FakeGuildRepository struct {
	GetGuildFunc    func(ctx context.Context, guildID sharedtypes.GuildID) (*guilddb.Guild, error)
	CreateGuildFunc func(ctx context.Context, guild *guilddb.Guild) error
	UpdateGuildFunc func(ctx context.Context, guildID sharedtypes.GuildID, updates *guilddb.GuildUpdateFields) (*guilddb.Guild, error)
	DeleteGuildFunc func(ctx context.Context, guildID sharedtypes.GuildID) error
}

func (f *FakeGuildRepository) GetGuild(ctx context.Context, guildID sharedtypes.GuildID) (*guilddb.Guild, error) {
	return f.GetGuildFunc(ctx, guildID)
}

func (f *FakeGuildRepository) CreateGuild(ctx context.Context, guild *guilddb.Guild) error {
	return f.CreateGuildFunc(ctx, guild)
}

func (f *FakeGuildRepository) UpdateGuild(ctx context.Context, guildID sharedtypes.GuildID, updates *guilddb.GuildUpdateFields) (*guilddb.Guild, error) {
	return f.UpdateGuildFunc(ctx, guildID, updates)
}

func (f *FakeGuildRepository) DeleteGuild(ctx context.Context, guildID sharedtypes.GuildID) error {
	return f.DeleteGuildFunc(ctx, guildID)
}

// FakeUserRepository provides a programmable stub for the userdb.UserDB
// interface.
type FakeUserRepository struct {
	GetUserFunc            func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error)
	EnsureUserFunc         func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*userdb.User, error)
	SetBannedFunc          func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*userdb.User, error)
	LeaderboardFunc        func(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error)
	GetUsersFunc           func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*userdb.User, error)
	ApplyRatingChangesFunc func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []userdb.RatingChange) error
}

func (f *FakeUserRepository) GetUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error) {
	return f.GetUserFunc(ctx, guildID, userID)
}

func (f *FakeUserRepository) EnsureUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*userdb.User, error) {
	return f.EnsureUserFunc(ctx, guildID, userID, username, startingRating)
}

func (f *FakeUserRepository) SetBanned(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*userdb.User, error) {
	return f.SetBannedFunc(ctx, guildID, userID, banned)
}

func (f *FakeUserRepository) Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error) {
	return f.LeaderboardFunc(ctx, guildID, limit)
}

func (f *FakeUserRepository) GetUsers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*userdb.User, error) {
	return f.GetUsersFunc(ctx, idb, guildID, userIDs)
}

func (f *FakeUserRepository) ApplyRatingChanges(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []userdb.RatingChange) error {
	return f.ApplyRatingChangesFunc(ctx, idb, guildID, changes)
}

// FakeMatchRepository provides a programmable stub for the matchdb.MatchDB
// interface. RunInTx runs the callback with a zero transaction.
type FakeMatchRepository struct {
	RunInTxFunc         func(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error
	NextMatchIDFunc     func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID) (sharedtypes.MatchID, error)
	CreateMatchFunc     func(ctx context.Context, idb bun.IDB, match *matchdb.Match, players []*matchdb.MatchPlayer) error
	GetMatchFunc        func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (*matchdb.Match, error)
	GetMatchPlayersFunc func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) ([]*matchdb.MatchPlayer, error)
	HasOngoingMatchFunc func(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error)
	FinalizeMatchFunc   func(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID, final *matchdb.Finalization) error
}

func (f *FakeMatchRepository) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	if f.RunInTxFunc != nil {
		return f.RunInTxFunc(ctx, fn)
	}
	return fn(ctx, bun.Tx{})
}

func (f *FakeMatchRepository) NextMatchID(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID) (sharedtypes.MatchID, error) {
	return f.NextMatchIDFunc(ctx, idb, guildID)
}

func (f *FakeMatchRepository) CreateMatch(ctx context.Context, idb bun.IDB, match *matchdb.Match, players []*matchdb.MatchPlayer) error {
	return f.CreateMatchFunc(ctx, idb, match, players)
}

func (f *FakeMatchRepository) GetMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (*matchdb.Match, error) {
	return f.GetMatchFunc(ctx, idb, guildID, matchID)
}

func (f *FakeMatchRepository) GetMatchPlayers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) ([]*matchdb.MatchPlayer, error) {
	return f.GetMatchPlayersFunc(ctx, idb, guildID, matchID)
}

func (f *FakeMatchRepository) HasOngoingMatch(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error) {
	return f.HasOngoingMatchFunc(ctx, guildID, userID)
}

func (f *FakeMatchRepository) FinalizeMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID, final *matchdb.Finalization) error {
	return f.FinalizeMatchFunc(ctx, idb, guildID, matchID, final)
}
