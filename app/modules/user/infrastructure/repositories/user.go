package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharederrors"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// ErrUserNotFound indicates no profile exists for the user in the guild.
var ErrUserNotFound = errors.New("user not found")

// UserDBImpl is the bun-backed user repository.
type UserDBImpl struct {
	DB *bun.DB
}

// GetUser retrieves a user's profile in a guild.
func (db *UserDBImpl) GetUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (*User, error) {
	user := &User{}
	err := db.DB.NewSelect().Model(user).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, sharederrors.MapStorageError(err)
	}
	return user, nil
}

// EnsureUser creates the profile if it does not exist yet and returns the
// current row either way.
func (db *UserDBImpl) EnsureUser(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string, startingRating sharedtypes.Rating) (*User, error) {
	user := &User{
		GuildID:  guildID,
		UserID:   userID,
		Username: username,
		Rating:   startingRating,
	}
	_, err := db.DB.NewInsert().Model(user).
		On("CONFLICT (guild_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	return db.GetUser(ctx, guildID, userID)
}

// SetBanned flips the queue-ban flag and returns the updated profile.
func (db *UserDBImpl) SetBanned(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, banned bool) (*User, error) {
	res, err := db.DB.NewUpdate().Model((*User)(nil)).
		Set("banned = ?", banned).
		Where("guild_id = ? AND user_id = ?", guildID, userID).
		Exec(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}
	return db.GetUser(ctx, guildID, userID)
}

// Leaderboard returns the guild's profiles ordered by rating descending.
func (db *UserDBImpl) Leaderboard(ctx context.Context, guildID sharedtypes.GuildID, limit int) ([]*User, error) {
	var users []*User
	err := db.DB.NewSelect().Model(&users).
		Where("guild_id = ?", guildID).
		Order("elo DESC", "wins DESC", "user_id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	return users, nil
}

// GetUsers loads profiles for the given IDs in one query on the passed IDB.
func (db *UserDBImpl) GetUsers(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, userIDs []sharedtypes.UserID) ([]*User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var users []*User
	err := idb.NewSelect().Model(&users).
		Where("guild_id = ?", guildID).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	return users, nil
}

// ApplyRatingChanges updates each player's rating and counters on the passed
// IDB. Every change must hit exactly one row; a miss aborts the enclosing
// transaction.
func (db *UserDBImpl) ApplyRatingChanges(ctx context.Context, idb bun.IDB, guildID sharedtypes.GuildID, changes []RatingChange) error {
	for _, change := range changes {
		res, err := idb.NewUpdate().Model((*User)(nil)).
			Set("elo = ?", change.NewRating).
			Set("wins = wins + ?", change.WinsDelta).
			Set("losses = losses + ?", change.LossesDelta).
			Set("draws = draws + ?", change.DrawsDelta).
			Where("guild_id = ? AND user_id = ?", guildID, change.UserID).
			Exec(ctx)
		if err != nil {
			return sharederrors.MapStorageError(err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("%w: %s", ErrUserNotFound, change.UserID)
		}
	}
	return nil
}
