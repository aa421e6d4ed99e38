package guildservice

import (
	"context"

	guilddb "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/infrastructure/repositories"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// FakeGuildRepository provides a programmable stub for the guilddb.GuildDB
// interface.
type FakeGuildRepository struct {
	trace []string

	GetGuildFunc    func(ctx context.Context, guildID sharedtypes.GuildID) (*guilddb.Guild, error)
	CreateGuildFunc func(ctx context.Context, guild *guilddb.Guild) error
	UpdateGuildFunc func(ctx context.Context, guildID sharedtypes.GuildID, updates *guilddb.GuildUpdateFields) (*guilddb.Guild, error)
	DeleteGuildFunc func(ctx context.Context, guildID sharedtypes.GuildID) error
}

func (f *FakeGuildRepository) GetGuild(ctx context.Context, guildID sharedtypes.GuildID) (*guilddb.Guild, error) {
	f.trace = append(f.trace, "GetGuild")
	return f.GetGuildFunc(ctx, guildID)
}

func (f *FakeGuildRepository) CreateGuild(ctx context.Context, guild *guilddb.Guild) error {
	f.trace = append(f.trace, "CreateGuild")
	return f.CreateGuildFunc(ctx, guild)
}

func (f *FakeGuildRepository) UpdateGuild(ctx context.Context, guildID sharedtypes.GuildID, updates *guilddb.GuildUpdateFields) (*guilddb.Guild, error) {
	f.trace = append(f.trace, "UpdateGuild")
	return f.UpdateGuildFunc(ctx, guildID, updates)
}

func (f *FakeGuildRepository) DeleteGuild(ctx context.Context, guildID sharedtypes.GuildID) error {
	f.trace = append(f.trace, "DeleteGuild")
	return f.DeleteGuildFunc(ctx, guildID)
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeGuildRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}
