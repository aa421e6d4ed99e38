package guilddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharederrors"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// ErrGuildNotFound indicates the guild has not been onboarded.
var ErrGuildNotFound = errors.New("guild not found")

// ErrGuildAlreadyExists indicates onboarding was attempted twice.
var ErrGuildAlreadyExists = errors.New("guild already exists")

// GuildDBImpl is the bun-backed guild repository.
type GuildDBImpl struct {
	DB *bun.DB
}

// GetGuild retrieves a guild row.
func (db *GuildDBImpl) GetGuild(ctx context.Context, guildID sharedtypes.GuildID) (*Guild, error) {
	guild := &Guild{}
	err := db.DB.NewSelect().Model(guild).Where("guild_id = ?", guildID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGuildNotFound
		}
		return nil, sharederrors.MapStorageError(err)
	}
	return guild, nil
}

// CreateGuild inserts a guild row with default (unconfigured) settings.
func (db *GuildDBImpl) CreateGuild(ctx context.Context, guild *Guild) error {
	res, err := db.DB.NewInsert().
		Model(guild).
		On("CONFLICT (guild_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return sharederrors.MapStorageError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrGuildAlreadyExists
	}
	return nil
}

// UpdateGuild applies a partial configuration update and returns the updated
// row.
func (db *GuildDBImpl) UpdateGuild(ctx context.Context, guildID sharedtypes.GuildID, updates *GuildUpdateFields) (*Guild, error) {
	q := db.DB.NewUpdate().
		Model((*Guild)(nil)).
		Set("updated_at = current_timestamp").
		Where("guild_id = ?", guildID)

	if updates.QueueCategoryID != nil {
		q = q.Set("vc_queues_category = ?", *updates.QueueCategoryID)
	}
	if updates.MatchCategoryID != nil {
		q = q.Set("vc_matches_category = ?", *updates.MatchCategoryID)
	}
	if updates.ScorerRoleID != nil {
		q = q.Set("scorer_role_id = ?", *updates.ScorerRoleID)
	}
	if updates.LogChannelID != nil {
		q = q.Set("log_channel = ?", *updates.LogChannelID)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, sharederrors.MapStorageError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrGuildNotFound
	}

	return db.GetGuild(ctx, guildID)
}

// DeleteGuild removes a guild row. Users, matches, and match players go with
// it through the declared ON DELETE CASCADE constraints.
func (db *GuildDBImpl) DeleteGuild(ctx context.Context, guildID sharedtypes.GuildID) error {
	res, err := db.DB.NewDelete().
		Model((*Guild)(nil)).
		Where("guild_id = ?", guildID).
		Exec(ctx)
	if err != nil {
		return sharederrors.MapStorageError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrGuildNotFound
	}
	return nil
}
