// Package bundb holds the shared database connection and the per-module
// repositories built on it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
)

// DBService bundles the repositories over one connection pool.
type DBService struct {
	GuildDB *guilddb.GuildDBImpl
	UserDB  *userdb.UserDBImpl
	MatchDB *matchdb.MatchDBImpl
	db      *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close releases the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and wires the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(&guilddb.Guild{})
	db.RegisterModel(&userdb.User{})
	db.RegisterModel(&matchdb.Match{})
	db.RegisterModel(&matchdb.MatchPlayer{})

	return &DBService{
		GuildDB: &guilddb.GuildDBImpl{DB: db},
		UserDB:  &userdb.UserDBImpl{DB: db},
		MatchDB: &matchdb.MatchDBImpl{DB: db},
		db:      db,
	}, nil
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return sqldb, nil
}
