package matchdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Match is one game between two teams. Status carries the two-state
// lifecycle; the only legal transition is ongoing -> finalized, applied
// exactly once by score submission.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	GuildID        sharedtypes.GuildID     `bun:"guild_id,pk,type:varchar(20)"`
	MatchID        sharedtypes.MatchID     `bun:"match_id,pk"`
	VoiceChannelID sharedtypes.ChannelID   `bun:"vc_id,nullzero,type:varchar(20)"`
	TextChannelID  sharedtypes.ChannelID   `bun:"tc_id,nullzero,type:varchar(20)"`
	StartedAt      time.Time               `bun:"started_at,notnull"`
	Status         sharedtypes.MatchStatus `bun:"status,notnull,default:'ongoing'"`
	Team1Score     sharedtypes.Score       `bun:"team1_score,notnull,default:0"`
	Team2Score     sharedtypes.Score       `bun:"team2_score,notnull,default:0"`
	ScoredBy       sharedtypes.UserID      `bun:"scored_by,nullzero,type:varchar(20)"`
	EndedAt        *time.Time              `bun:"ended_at,nullzero"`
}

// IsOngoing reports whether the match can still accept a score.
func (m *Match) IsOngoing() bool {
	return m.Status == sharedtypes.MatchStatusOngoing
}

// MatchPlayer is one participant's row in a match. Rows are written at
// formation time and never mutated afterwards; they disappear with the
// match through the cascade constraint.
type MatchPlayer struct {
	bun.BaseModel `bun:"table:match_players,alias:mp"`

	GuildID sharedtypes.GuildID    `bun:"guild_id,pk,type:varchar(20)"`
	MatchID sharedtypes.MatchID    `bun:"match_id,pk"`
	UserID  sharedtypes.UserID     `bun:"user_id,pk,type:varchar(20)"`
	Team    sharedtypes.TeamNumber `bun:"team,notnull,default:0"`
}
