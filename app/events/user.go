package events

import "github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"

// User subjects.
const (
	UserBanRequested   = "user.ban.requested"
	UserBanned         = "user.banned"
	UserUnbanRequested = "user.unban.requested"
	UserUnbanned       = "user.unbanned"
	UserBanFailed      = "user.ban.failed"
)

// UserBanRequestedPayload bans or unbans a user from queueing in a guild.
type UserBanRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

// UserBanStatePayload reports the resulting ban state.
type UserBanStatePayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Banned  bool                `json:"banned"`
}

// UserFailedPayload is the shared failure shape for user operations.
type UserFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Reason  string              `json:"reason"`
}
