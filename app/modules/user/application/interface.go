package userservice

import (
	"context"

	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Service defines the interface for user operations.
type Service interface {
	GetProfile(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*userdb.User, error)
	GetLeaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*userdb.User, error)
	SetBanState(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (UserOperationResult, error)
}
