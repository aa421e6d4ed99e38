package events

import (
	"time"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Match subjects.
const (
	MatchScoreSubmissionRequested = "match.score.submission.requested"
	MatchFinalized                = "match.finalized"
	MatchScoreSubmissionFailed    = "match.score.submission.failed"
)

// MatchScoreSubmissionRequestedPayload finalizes a match. SubmitterRoles is
// the authenticated submitter's current role set as reported by the
// front-end; the engine only checks it against the guild's scorer role.
type MatchScoreSubmissionRequestedPayload struct {
	GuildID        sharedtypes.GuildID  `json:"guild_id"`
	MatchID        sharedtypes.MatchID  `json:"match_id"`
	Team1Score     sharedtypes.Score    `json:"team1_score"`
	Team2Score     sharedtypes.Score    `json:"team2_score"`
	SubmitterID    sharedtypes.UserID   `json:"submitter_id"`
	SubmitterRoles []sharedtypes.RoleID `json:"submitter_roles"`
}

// PlayerResultPayload is one player's rating movement in a finalized match.
type PlayerResultPayload struct {
	UserID      sharedtypes.UserID     `json:"user_id"`
	Team        sharedtypes.TeamNumber `json:"team"`
	RatingBefore sharedtypes.Rating    `json:"rating_before"`
	RatingAfter  sharedtypes.Rating    `json:"rating_after"`
}

// MatchFinalizedPayload is the structured result emitted after a successful
// score submission, consumed by the logging destination and the platform
// front-end (channel archival, result message).
type MatchFinalizedPayload struct {
	GuildID        sharedtypes.GuildID      `json:"guild_id"`
	MatchID        sharedtypes.MatchID      `json:"match_id"`
	VoiceChannelID sharedtypes.ChannelID    `json:"vc_id"`
	TextChannelID  sharedtypes.ChannelID    `json:"tc_id"`
	Team1Score     sharedtypes.Score        `json:"team1_score"`
	Team2Score     sharedtypes.Score        `json:"team2_score"`
	Outcome        sharedtypes.MatchOutcome `json:"outcome"`
	ScoredBy       sharedtypes.UserID       `json:"scored_by"`
	EndedAt        time.Time                `json:"ended_at"`
	Team1Delta     int                      `json:"team1_delta"`
	Team2Delta     int                      `json:"team2_delta"`
	Players        []PlayerResultPayload    `json:"players"`
	LogChannelID   sharedtypes.ChannelID    `json:"log_channel"`
}

// MatchPlayerPayload is one participant of a match.
type MatchPlayerPayload struct {
	UserID sharedtypes.UserID     `json:"user_id"`
	Team   sharedtypes.TeamNumber `json:"team"`
}

// MatchDetailsPayload is a point-in-time view of a match and its players.
type MatchDetailsPayload struct {
	GuildID        sharedtypes.GuildID     `json:"guild_id"`
	MatchID        sharedtypes.MatchID     `json:"match_id"`
	VoiceChannelID sharedtypes.ChannelID   `json:"vc_id"`
	TextChannelID  sharedtypes.ChannelID   `json:"tc_id"`
	Status         sharedtypes.MatchStatus `json:"status"`
	StartedAt      time.Time               `json:"started_at"`
	EndedAt        *time.Time              `json:"ended_at,omitempty"`
	Team1Score     sharedtypes.Score       `json:"team1_score"`
	Team2Score     sharedtypes.Score       `json:"team2_score"`
	ScoredBy       sharedtypes.UserID      `json:"scored_by,omitempty"`
	Players        []MatchPlayerPayload    `json:"players"`
}

// MatchScoreSubmissionFailedPayload reports a rejected score submission.
type MatchScoreSubmissionFailedPayload struct {
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	MatchID     sharedtypes.MatchID `json:"match_id"`
	SubmitterID sharedtypes.UserID  `json:"submitter_id"`
	Reason      string              `json:"reason"`
}
