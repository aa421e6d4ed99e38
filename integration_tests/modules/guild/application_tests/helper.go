package guildintegrationtests

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/integration_tests/testutils"
)

var (
	testEnv     *testutils.TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

// TestDeps holds the dependencies individual tests work with.
type TestDeps struct {
	Ctx     context.Context
	BunDB   *bun.DB
	GuildDB *guilddb.GuildDBImpl
	UserDB  *userdb.UserDBImpl
	MatchDB *matchdb.MatchDBImpl
	Service guildservice.Service
}

func getTestEnv(t *testing.T) *testutils.TestEnvironment {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test requires docker")
	}

	testEnvOnce.Do(func() {
		testEnv, testEnvErr = testutils.NewTestEnvironment()
	})
	if testEnvErr != nil {
		t.Fatalf("test environment initialization failed: %v", testEnvErr)
	}
	return testEnv
}

func setupTestGuildService(t *testing.T) TestDeps {
	t.Helper()

	env := getTestEnv(t)

	resetCtx, resetCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer resetCancel()
	if err := env.Reset(resetCtx); err != nil {
		t.Fatalf("failed to reset environment: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(testWriter{t: t}, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	service := guildservice.NewGuildService(env.DBService.GuildDB, logger, tracer)

	return TestDeps{
		Ctx:     env.Ctx,
		BunDB:   env.DB,
		GuildDB: env.DBService.GuildDB,
		UserDB:  env.DBService.UserDB,
		MatchDB: env.DBService.MatchDB,
		Service: service,
	}
}

// testWriter routes slog output through the test log.
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}
