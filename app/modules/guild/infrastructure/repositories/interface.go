package guilddb

import (
	"context"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// GuildUpdateFields carries a partial configuration update. Nil fields are
// left untouched.
type GuildUpdateFields struct {
	QueueCategoryID *sharedtypes.ChannelID
	MatchCategoryID *sharedtypes.ChannelID
	ScorerRoleID    *sharedtypes.RoleID
	LogChannelID    *sharedtypes.ChannelID
}

// GuildDB is the repository for guild rows.
type GuildDB interface {
	GetGuild(ctx context.Context, guildID sharedtypes.GuildID) (*Guild, error)
	CreateGuild(ctx context.Context, guild *Guild) error
	UpdateGuild(ctx context.Context, guildID sharedtypes.GuildID, updates *GuildUpdateFields) (*Guild, error)
	DeleteGuild(ctx context.Context, guildID sharedtypes.GuildID) error
}
