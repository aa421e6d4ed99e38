package guilddb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// Guild represents a Discord server's matchmaking configuration. Deleting the
// row cascades through users, matches, and match players.
type Guild struct {
	bun.BaseModel `bun:"table:guilds,alias:g"`

	GuildID         sharedtypes.GuildID   `bun:"guild_id,pk,type:varchar(20)"`
	QueueCategoryID sharedtypes.ChannelID `bun:"vc_queues_category,nullzero,type:varchar(20)"`
	MatchCategoryID sharedtypes.ChannelID `bun:"vc_matches_category,nullzero,type:varchar(20)"`
	ScorerRoleID    sharedtypes.RoleID    `bun:"scorer_role_id,nullzero,type:varchar(20)"`
	LogChannelID    sharedtypes.ChannelID `bun:"log_channel,nullzero,type:varchar(20)"`
	CreatedAt       time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// IsConfigured reports whether the guild carries everything the engine needs
// to run matches: channel categories for queues and matches plus the scorer
// role.
func (g *Guild) IsConfigured() bool {
	return g.QueueCategoryID != "" && g.MatchCategoryID != "" && g.ScorerRoleID != ""
}
