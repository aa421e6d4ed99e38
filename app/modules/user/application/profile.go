package userservice

import (
	"context"

	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

const defaultLeaderboardLimit = 25

// GetProfile retrieves a user's profile in a guild. This is a read-only
// query and may observe any committed state.
func (s *UserService) GetProfile(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.GetProfile")
	defer span.End()

	return s.UserDB.GetUser(ctx, guildID, userID)
}

// GetLeaderboard returns the guild's profiles ordered by rating descending.
func (s *UserService) GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.GetLeaderboard")
	defer span.End()

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	return s.UserDB.Leaderboard(ctx, guildID, limit)
}
