package queueservice

import (
	"context"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"
)

// ChannelAssignment carries the platform channel identifiers for a formed
// match. The engine records identifiers it is given; it never creates
// channels itself.
type ChannelAssignment struct {
	VoiceChannelID sharedtypes.ChannelID
	TextChannelID  sharedtypes.ChannelID
}

// Service defines the interface for queue operations.
type Service interface {
	Enqueue(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID, username string) (QueueOperationResult, error)
	Dequeue(ctx context.Context, guildID sharedtypes.GuildID, userID sharedtypes.UserID) (QueueOperationResult, error)
	TryFormMatch(ctx context.Context, guildID sharedtypes.GuildID, channels ChannelAssignment) (QueueOperationResult, error)
	// PoolSize reports the number of waiting players, for observability.
	PoolSize(guildID sharedtypes.GuildID) int
	// MatchSize returns the configured total players per match.
	MatchSize() int
}
