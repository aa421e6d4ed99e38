package events

import (
	"time"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Queue subjects.
const (
	QueueJoinRequested   = "queue.join.requested"
	QueuePlayerJoined    = "queue.player.joined"
	QueueJoinFailed      = "queue.join.failed"
	QueueLeaveRequested  = "queue.leave.requested"
	QueuePlayerLeft      = "queue.player.left"
	QueueLeaveFailed     = "queue.leave.failed"
	MatchFormRequested   = "queue.match.form.requested"
	MatchFormed          = "queue.match.formed"
	MatchFormationFailed = "queue.match.formation.failed"
)

// QueueJoinRequestedPayload enqueues a player. Username is used to lazily
// create the guild profile on first entry.
type QueueJoinRequestedPayload struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	UserID   sharedtypes.UserID  `json:"user_id"`
	Username string              `json:"username"`
}

// QueuePlayerJoinedPayload reports a successful enqueue.
type QueuePlayerJoinedPayload struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	UserID   sharedtypes.UserID  `json:"user_id"`
	PoolSize int                 `json:"pool_size"`
}

// QueueLeaveRequestedPayload dequeues a waiting player.
type QueueLeaveRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
}

// QueuePlayerLeftPayload reports a successful dequeue.
type QueuePlayerLeftPayload struct {
	GuildID  sharedtypes.GuildID `json:"guild_id"`
	UserID   sharedtypes.UserID  `json:"user_id"`
	PoolSize int                 `json:"pool_size"`
}

// QueueFailedPayload is the shared failure shape for queue operations.
type QueueFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	UserID  sharedtypes.UserID  `json:"user_id"`
	Reason  string              `json:"reason"`
}

// MatchFormRequestedPayload asks for a match to be formed from the guild's
// pool. The front-end creates the dedicated channels up front and passes
// their identifiers along; the engine only records them.
type MatchFormRequestedPayload struct {
	GuildID        sharedtypes.GuildID   `json:"guild_id"`
	VoiceChannelID sharedtypes.ChannelID `json:"vc_id"`
	TextChannelID  sharedtypes.ChannelID `json:"tc_id"`
}

// TeamAssignmentPayload is one player's side assignment in a formed match.
type TeamAssignmentPayload struct {
	UserID sharedtypes.UserID     `json:"user_id"`
	Team   sharedtypes.TeamNumber `json:"team"`
	Rating sharedtypes.Rating     `json:"rating"`
}

// MatchFormedPayload informs the platform front-end that a match was created
// so it can set up the dedicated voice and text channels.
type MatchFormedPayload struct {
	GuildID        sharedtypes.GuildID     `json:"guild_id"`
	MatchID        sharedtypes.MatchID     `json:"match_id"`
	VoiceChannelID sharedtypes.ChannelID   `json:"vc_id"`
	TextChannelID  sharedtypes.ChannelID   `json:"tc_id"`
	StartedAt      time.Time               `json:"started_at"`
	Players        []TeamAssignmentPayload `json:"players"`
}

// MatchFormationFailedPayload reports a failed formation attempt.
type MatchFormationFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
