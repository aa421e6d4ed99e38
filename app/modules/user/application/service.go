// Package userservice implements per-guild profile operations: lookups,
// leaderboards, and queue bans. Ratings and win/loss counters are owned by
// the match module's finalization transaction, never mutated here.
package userservice

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/results"
)

// UserOperationResult is the outcome of a user operation.
type UserOperationResult = results.OperationResult[any, any]

// UserService handles user-related logic.
type UserService struct {
	UserDB userdb.UserDB
	logger *slog.Logger
	tracer trace.Tracer
}

// NewUserService creates a new UserService.
func NewUserService(db userdb.UserDB, logger *slog.Logger, tracer trace.Tracer) Service {
	return &UserService{
		UserDB: db,
		logger: logger,
		tracer: tracer,
	}
}
