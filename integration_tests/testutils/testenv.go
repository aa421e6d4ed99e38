package testutils

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	guildmigrations "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories/migrations"
	matchmigrations "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories/migrations"
	usermigrations "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories/migrations"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
	"github.com/dannynotsmart/Ranked-Bedwars/db/bundb"
	"github.com/dannynotsmart/Ranked-Bedwars/integration_tests/containers"
)

// TestEnvironment holds the containerized database shared by integration
// tests.
type TestEnvironment struct {
	Ctx         context.Context
	Cancel      context.CancelFunc
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DBService   *bundb.DBService
}

// NewTestEnvironment starts a Postgres container, connects through the
// regular service wiring, and runs all module migrations.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	dbService, err := bundb.NewBunDBService(ctx, config.PostgresConfig{DSN: dsn})
	if err != nil {
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	db := dbService.GetDB()
	if err := runMigrations(ctx, db); err != nil {
		dbService.Close()
		pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		Cancel:      cancel,
		PgContainer: pgContainer,
		DB:          db,
		DBService:   dbService,
	}, nil
}

// Reset empties every table so each test starts from a clean slate.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	_, err := env.DB.ExecContext(ctx, "TRUNCATE TABLE match_players, matches, users, guilds CASCADE")
	if err != nil {
		return fmt.Errorf("failed to reset test database: %w", err)
	}
	return nil
}

// Close tears the environment down.
func (env *TestEnvironment) Close(ctx context.Context) {
	env.DBService.Close()
	env.PgContainer.Terminate(ctx)
	env.Cancel()
}

// runMigrations applies every module's migrations in foreign key order.
func runMigrations(ctx context.Context, db *bun.DB) error {
	modules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"guild", guildmigrations.Migrations},
		{"user", usermigrations.Migrations},
		{"match", matchmigrations.Migrations},
	}

	if err := migrate.NewMigrator(db, modules[0].migrations).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	for _, mod := range modules {
		migrator := migrate.NewMigrator(db, mod.migrations)
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate %s module: %w", mod.name, err)
		}
	}
	return nil
}
