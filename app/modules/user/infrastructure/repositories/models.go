package userdb

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// User is a player's per-guild profile. The same Discord user has one row
// per guild they play in. The column default of 0 for elo is a schema
// placeholder; profiles are created with the configured starting rating.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	GuildID   sharedtypes.GuildID `bun:"guild_id,pk,type:varchar(20)"`
	UserID    sharedtypes.UserID  `bun:"user_id,pk,type:varchar(20)"`
	Username  string              `bun:"username,notnull"`
	Rating    sharedtypes.Rating  `bun:"elo,notnull,default:0"`
	Banned    bool                `bun:"banned,notnull,default:false"`
	Wins      int                 `bun:"wins,notnull,default:0"`
	Losses    int                 `bun:"losses,notnull,default:0"`
	Draws     int                 `bun:"draws,notnull,default:0"`
	CreatedAt time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
