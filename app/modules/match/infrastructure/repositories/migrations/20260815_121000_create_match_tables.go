package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating matches table...")
			if _, err := db.NewCreateTable().Model((*matchdb.Match)(nil)).
				IfNotExists().
				ForeignKey(`("guild_id") REFERENCES "guilds" ("guild_id") ON DELETE CASCADE`).
				Exec(ctx); err != nil {
				return err
			}

			fmt.Println("Creating match_players table...")
			if _, err := db.NewCreateTable().Model((*matchdb.MatchPlayer)(nil)).
				IfNotExists().
				ForeignKey(`("guild_id", "match_id") REFERENCES "matches" ("guild_id", "match_id") ON DELETE CASCADE`).
				ForeignKey(`("guild_id", "user_id") REFERENCES "users" ("guild_id", "user_id") ON DELETE CASCADE`).
				Exec(ctx); err != nil {
				return err
			}

			fmt.Println("match tables created successfully!")
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping match tables...")
			if _, err := db.NewDropTable().Model((*matchdb.MatchPlayer)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			if _, err := db.NewDropTable().Model((*matchdb.Match)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("match tables dropped successfully!")
			return nil
		},
	)
}
