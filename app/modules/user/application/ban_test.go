package userservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

func newTestService(repo userdb.UserDB) Service {
	logger := slog.New(slog.DiscardHandler)
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewUserService(repo, logger, tracer)
}

func TestUserService_SetBanState(t *testing.T) {
	ctx := context.Background()
	guildID := sharedtypes.GuildID("123456789012345678")
	userID := sharedtypes.UserID("111111111111111111")

	t.Run("bans a user", func(t *testing.T) {
		repo := &FakeUserRepository{
			SetBannedFunc: func(ctx context.Context, g sharedtypes.GuildID, u sharedtypes.UserID, banned bool) (*userdb.User, error) {
				return &userdb.User{GuildID: g, UserID: u, Banned: banned}, nil
			},
		}

		result, err := newTestService(repo).SetBanState(ctx, guildID, userID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := result.Success.(*events.UserBanStatePayload)
		if !payload.Banned {
			t.Error("expected banned=true in payload")
		}
	})

	t.Run("unknown user fails", func(t *testing.T) {
		repo := &FakeUserRepository{
			SetBannedFunc: func(ctx context.Context, g sharedtypes.GuildID, u sharedtypes.UserID, banned bool) (*userdb.User, error) {
				return nil, userdb.ErrUserNotFound
			},
		}

		result, err := newTestService(repo).SetBanState(ctx, guildID, userID, true)
		if !errors.Is(err, userdb.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		if result.Failure == nil {
			t.Error("expected a failure payload")
		}
	})
}

func TestUserService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	guildID := sharedtypes.GuildID("123456789012345678")

	t.Run("defaults the limit", func(t *testing.T) {
		var gotLimit int
		repo := &FakeUserRepository{
			LeaderboardFunc: func(ctx context.Context, g sharedtypes.GuildID, limit int) ([]*userdb.User, error) {
				gotLimit = limit
				return nil, nil
			},
		}

		if _, err := newTestService(repo).GetLeaderboard(ctx, guildID, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotLimit != defaultLeaderboardLimit {
			t.Errorf("expected default limit %d, got %d", defaultLeaderboardLimit, gotLimit)
		}
	})
}
