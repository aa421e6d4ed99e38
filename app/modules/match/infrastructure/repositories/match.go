package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharederrors"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

var (
	// ErrMatchNotFound indicates the match does not exist in the guild.
	ErrMatchNotFound = errors.New("match not found")

	// ErrMatchAlreadyFinalized indicates the match already left the
	// ongoing state.
	ErrMatchAlreadyFinalized = errors.New("match already finalized")
)

// MatchDBImpl is the bun-backed match repository.
type MatchDBImpl struct {
	DB *bun.DB
}

// RunInTx runs fn inside a serializable transaction. Serialization failures
// surface as sharederrors.ErrConcurrentModification for the retry layer.
func (db *MatchDBImpl) RunInTx(ctx context.Context, fn func(ctx context.Context, tx bun.Tx) error) error {
	err := db.DB.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	if err != nil {
		return sharederrors.MapStorageError(err)
	}
	return nil
}

// NextMatchID allocates the next match identifier within the guild. Callers
// run this inside the formation transaction so concurrent formations in one
// guild cannot allocate the same identifier.
func (db *MatchDBImpl) NextMatchID(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID) (sharedtypes.MatchID, error) {
	var next int64
	err := idb.NewSelect().
		Model((*Match)(nil)).
		ColumnExpr("COALESCE(MAX(match_id), 0) + 1").
		Where("guild_id = ?", guildID).
		Scan(ctx, &next)
	if err != nil {
		return 0, sharederrors.MapStorageError(err)
	}
	return sharedtypes.MatchID(next), nil
}

// CreateMatch inserts the match and its player rows.
func (db *MatchDBImpl) CreateMatch(ctx context.Context, idb bun.IDB, match *Match, players []*MatchPlayer) error {
	if _, err := idb.NewInsert().Model(match).Exec(ctx); err != nil {
		return sharederrors.MapStorageError(err)
	}
	if len(players) > 0 {
		if _, err := idb.NewInsert().Model(&players).Exec(ctx); err != nil {
			return sharederrors.MapStorageError(err)
		}
	}
	return nil
}

// GetMatch retrieves a match by its guild-scoped identifier.
func (db *MatchDBImpl) GetMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) (*Match, error) {
	match := &Match{}
	err := idb.NewSelect().Model(match).
		Where("m.guild_id = ? AND m.match_id = ?", guildID, matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, sharederrors.MapStorageError(err)
	}
	return match, nil
}

// GetMatchPlayers retrieves the player rows of a match.
func (db *MatchDBImpl) GetMatchPlayers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID) ([]*MatchPlayer, error) {
	var players []*MatchPlayer
	err := idb.NewSelect().Model(&players).
		Where("mp.guild_id = ? AND mp.match_id = ?", guildID, matchID).
		Order("user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	return players, nil
}

// HasOngoingMatch reports whether the user currently participates in an
// ongoing match in the guild.
func (db *MatchDBImpl) HasOngoingMatch(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (bool, error) {
	exists, err := db.DB.NewSelect().
		Model((*MatchPlayer)(nil)).
		Join("JOIN matches AS m ON m.guild_id = mp.guild_id AND m.match_id = mp.match_id").
		Where("mp.guild_id = ? AND mp.user_id = ?", guildID, userID).
		Where("m.status = ?", sharedtypes.MatchStatusOngoing).
		Exists(ctx)
	if err != nil {
		return false, sharederrors.MapStorageError(err)
	}
	return exists, nil
}

// FinalizeMatch flips the match to finalized, guarded by the status column
// so a concurrent or repeated submission affects zero rows.
func (db *MatchDBImpl) FinalizeMatch(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID, final *Finalization) error {
	res, err := idb.NewUpdate().Model((*Match)(nil)).
		Set("status = ?", sharedtypes.MatchStatusFinalized).
		Set("team1_score = ?", final.Team1Score).
		Set("team2_score = ?", final.Team2Score).
		Set("scored_by = ?", final.ScoredBy).
		Set("ended_at = ?", final.EndedAt).
		Where("guild_id = ? AND match_id = ?", guildID, matchID).
		Where("status = ?", sharedtypes.MatchStatusOngoing).
		Exec(ctx)
	if err != nil {
		return sharederrors.MapStorageError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrMatchAlreadyFinalized
	}
	return nil
}
