// Package matchservice implements match finalization: score validation,
// rating movement, and the exactly-once lifecycle transition.
package matchservice

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/results"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/retry"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/metrics"
)

// MatchOperationResult is the outcome of a match operation.
type MatchOperationResult = results.OperationResult[any, any]

// MatchService handles score submission and match queries.
type MatchService struct {
	GuildDB guilddb.GuildDB
	UserDB  userdb.UserDB
	MatchDB matchdb.MatchDB
	cfg     config.MatchmakingConfig
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
	retry   retry.Config
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	guildDB guilddb.GuildDB,
	userDB userdb.UserDB,
	matchDB matchdb.MatchDB,
	cfg config.MatchmakingConfig,
	logger *slog.Logger,
	tracer trace.Tracer,
	m *metrics.Metrics,
) Service {
	return &MatchService{
		GuildDB: guildDB,
		UserDB:  userDB,
		MatchDB: matchDB,
		cfg:     cfg,
		logger:  logger,
		tracer:  tracer,
		metrics: m,
		retry: retry.Config{
			MaxRetries:      cfg.MaxRetries,
			InitialInterval: cfg.RetryInterval,
			OnRetry:         m.RetriedConflicts.Inc,
		},
	}
}
