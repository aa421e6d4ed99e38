// Package events defines the NATS subjects and payloads that make up the
// engine's external contract. The front-end publishes *Requested subjects;
// the engine answers with result subjects.
package events

import "github.com/dannynotsmart/Ranked-Bedwars/app/shared/sharedtypes"

// Guild subjects.
const (
	GuildSetupRequested        = "guild.setup.requested"
	GuildSetupCompleted        = "guild.setup.completed"
	GuildSetupFailed           = "guild.setup.failed"
	GuildConfigUpdateRequested = "guild.config.update.requested"
	GuildConfigUpdated         = "guild.config.updated"
	GuildConfigUpdateFailed    = "guild.config.update.failed"
	GuildTeardownRequested     = "guild.teardown.requested"
	GuildTeardownCompleted     = "guild.teardown.completed"
	GuildTeardownFailed        = "guild.teardown.failed"
)

// GuildSetupRequestedPayload onboards a guild.
type GuildSetupRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// GuildSetupCompletedPayload reports the stored configuration.
type GuildSetupCompletedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Config  GuildConfigPayload  `json:"config"`
}

// GuildConfigPayload mirrors the guild configuration row.
type GuildConfigPayload struct {
	QueueCategoryID sharedtypes.ChannelID `json:"vc_queues_category"`
	MatchCategoryID sharedtypes.ChannelID `json:"vc_matches_category"`
	ScorerRoleID    sharedtypes.RoleID    `json:"scorer_role_id"`
	LogChannelID    sharedtypes.ChannelID `json:"log_channel"`
}

// GuildConfigUpdateRequestedPayload carries a partial configuration update.
// Nil fields are left untouched.
type GuildConfigUpdateRequestedPayload struct {
	GuildID         sharedtypes.GuildID    `json:"guild_id"`
	QueueCategoryID *sharedtypes.ChannelID `json:"vc_queues_category,omitempty"`
	MatchCategoryID *sharedtypes.ChannelID `json:"vc_matches_category,omitempty"`
	ScorerRoleID    *sharedtypes.RoleID    `json:"scorer_role_id,omitempty"`
	LogChannelID    *sharedtypes.ChannelID `json:"log_channel,omitempty"`
}

// GuildConfigUpdatedPayload reports the configuration after an update.
type GuildConfigUpdatedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Config  GuildConfigPayload  `json:"config"`
}

// GuildTeardownRequestedPayload removes a guild and, by cascade, all of its
// users, matches, and match players.
type GuildTeardownRequestedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// GuildTeardownCompletedPayload confirms the cascade delete.
type GuildTeardownCompletedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

// GuildFailedPayload is the shared failure shape for guild operations.
type GuildFailedPayload struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
