package userservice

import (
	"context"
	"log/slog"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// SetBanState bans or unbans a user from queueing in a guild. A ban only
// blocks future enqueues; it does not touch matches already formed.
func (s *UserService) SetBanState(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (UserOperationResult, error) {
	ctx, span := s.tracer.Start(ctx, "user.SetBanState")
	defer span.End()

	user, err := s.UserDB.SetBanned(ctx, guildID, userID, banned)
	if err != nil {
		return UserOperationResult{
			Failure: &events.UserFailedPayload{
				GuildID: guildID,
				UserID:  userID,
				Reason:  err.Error(),
			},
			Error: err,
		}, err
	}

	s.logger.Info("user ban state changed",
		slog.String("guild_id", string(guildID)),
		slog.String("user_id", string(userID)),
		slog.Bool("banned", user.Banned),
	)

	return UserOperationResult{
		Success: &events.UserBanStatePayload{
			GuildID: guildID,
			UserID:  userID,
			Banned:  user.Banned,
		},
	}, nil
}
