// Package queueservice implements the per-guild waiting pool and match
// formation. Enqueue, dequeue, and formation serialize per guild through the
// lock arena; pools of different guilds never contend.
package queueservice

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/results"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/retry"
	"github.com/dannynotsmart/Ranked-Bedwars/config"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/guildlock"
	"github.com/dannynotsmart/Ranked-Bedwars/internal/metrics"
)

// QueueOperationResult is the outcome of a queue operation.
type QueueOperationResult = results.OperationResult[any, any]

// QueueService handles the waiting pool and match formation.
type QueueService struct {
	pool    *WaitingPool
	locks   *guildlock.Arena
	GuildDB guilddb.GuildDB
	UserDB  userdb.UserDB
	MatchDB matchdb.MatchDB
	cfg     config.MatchmakingConfig
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
	retry   retry.Config
}

// NewQueueService creates a new QueueService.
func NewQueueService(
	guildDB guilddb.GuildDB,
	userDB userdb.UserDB,
	matchDB matchdb.MatchDB,
	locks *guildlock.Arena,
	cfg config.MatchmakingConfig,
	logger *slog.Logger,
	tracer trace.Tracer,
	m *metrics.Metrics,
) Service {
	return &QueueService{
		pool:    NewWaitingPool(),
		locks:   locks,
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
