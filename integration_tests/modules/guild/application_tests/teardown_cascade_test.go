package guildintegrationtests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uptrace/bun"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	matchdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/infrastructure/repositories"
	userdb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

func seedGuild(t *testing.T, deps TestDeps, guildID sharedtypes.GuildID) {
	t.Helper()
	err := deps.GuildDB.CreateGuild(deps.Ctx, &guilddb.Guild{
		GuildID:         guildID,
		QueueCategoryID: "200000000000000001",
		MatchCategoryID: "200000000000000002",
		ScorerRoleID:    "300000000000000001",
		LogChannelID:    "200000000000000009",
	})
	if err != nil {
		t.Fatalf("failed to seed guild %s: %v", guildID, err)
	}
}

func seedUsers(t *testing.T, deps TestDeps, guildID sharedtypes.GuildID, userIDs ...sharedtypes.UserID) {
	t.Helper()
	for _, userID := range userIDs {
		if _, err := deps.UserDB.EnsureUser(deps.Ctx, guildID, userID, string(userID), 1000); err != nil {
			t.Fatalf("failed to seed user %s: %v", userID, err)
		}
	}
}

func seedOngoingMatch(t *testing.T, deps TestDeps, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) sharedtypes.MatchID {
	t.Helper()
	var matchID sharedtypes.MatchID
	err := deps.MatchDB.RunInTx(deps.Ctx, func(ctx context.Context, tx bun.Tx) error {
		id, err := deps.MatchDB.NextMatchID(ctx, tx, guildID)
		if err != nil {
			return err
		}
		match := &matchdb.Match{
			GuildID:        guildID,
			MatchID:        id,
			VoiceChannelID: "400000000000000001",
			TextChannelID:  "400000000000000002",
			StartedAt:      time.Now().UTC(),
			Status:         sharedtypes.MatchStatusOngoing,
		}
		players := make([]*matchdb.MatchPlayer, 0, len(userIDs))
		for i, userID := range userIDs {
			team := sharedtypes.TeamOne
			if i%2 == 1 {
				team = sharedtypes.TeamTwo
			}
			players = append(players, &matchdb.MatchPlayer{
				GuildID: guildID, MatchID: id, UserID: userID, Team: team,
			})
		}
		if err := deps.MatchDB.CreateMatch(ctx, tx, match, players); err != nil {
			return err
		}
		matchID = id
		return nil
	})
	if err != nil {
		t.Fatalf("failed to seed match: %v", err)
	}
	return matchID
}

func countRows(t *testing.T, deps TestDeps, model any, guildID sharedtypes.GuildID) int {
	t.Helper()
	count, err := deps.BunDB.NewSelect().Model(model).
		Where("guild_id = ?", guildID).
		Count(deps.Ctx)
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestTeardownGuildCascade(t *testing.T) {
	deps := setupTestGuildService(t)

	target := sharedtypes.GuildID("111111111111111111")
	bystander := sharedtypes.GuildID("222222222222222222")
	players := []sharedtypes.UserID{"p1", "p2", "p3", "p4"}

	seedGuild(t, deps, target)
	seedGuild(t, deps, bystander)
	seedUsers(t, deps, target, players...)
	seedUsers(t, deps, bystander, "q1", "q2")
	seedOngoingMatch(t, deps, target, players)
	seedOngoingMatch(t, deps, bystander, []sharedtypes.UserID{"q1", "q2"})

	result, err := deps.Service.TeardownGuild(deps.Ctx, target)
	if err != nil {
		t.Fatalf("teardown failed: %v", err)
	}
	if result.Success == nil {
		t.Fatalf("expected a success payload, got failure: %+v", result.Failure)
	}

	if _, err := deps.GuildDB.GetGuild(deps.Ctx, target); !errors.Is(err, guilddb.ErrGuildNotFound) {
		t.Errorf("expected guild row gone, got err %v", err)
	}
	if n := countRows(t, deps, (*userdb.User)(nil), target); n != 0 {
		t.Errorf("expected 0 users after teardown, got %d", n)
	}
	if n := countRows(t, deps, (*matchdb.Match)(nil), target); n != 0 {
		t.Errorf("expected 0 matches after teardown, got %d", n)
	}
	if n := countRows(t, deps, (*matchdb.MatchPlayer)(nil), target); n != 0 {
		t.Errorf("expected 0 match players after teardown, got %d", n)
	}

	// The other guild's rows are untouched.
	if n := countRows(t, deps, (*userdb.User)(nil), bystander); n != 2 {
		t.Errorf("expected 2 bystander users, got %d", n)
	}
	if n := countRows(t, deps, (*matchdb.Match)(nil), bystander); n != 1 {
		t.Errorf("expected 1 bystander match, got %d", n)
	}
	if n := countRows(t, deps, (*matchdb.MatchPlayer)(nil), bystander); n != 2 {
		t.Errorf("expected 2 bystander match players, got %d", n)
	}
}

func TestDeleteGuildMissingRow(t *testing.T) {
	deps := setupTestGuildService(t)

	err := deps.GuildDB.DeleteGuild(deps.Ctx, "999999999999999999")
	if !errors.Is(err, guilddb.ErrGuildNotFound) {
		t.Errorf("expected guild not found, got %v", err)
	}
}
