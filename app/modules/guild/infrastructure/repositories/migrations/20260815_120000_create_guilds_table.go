package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Creating guilds table...")
			if _, err := db.NewCreateTable().Model((*guilddb.Guild)(nil)).IfNotExists().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("guilds table created successfully!")
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			fmt.Println("Dropping guilds table...")
			if _, err := db.NewDropTable().Model((*guilddb.Guild)(nil)).IfExists().Cascade().Exec(ctx); err != nil {
				return err
			}
			fmt.Println("guilds table dropped successfully!")
			return nil
		},
	)
}
