package guildhandlers

import (
	"context"
	"errors"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// HandleSetupGuild handles the GuildSetupRequested event.
func (h *GuildHandlers) HandleSetupGuild(ctx context.Context, payload *events.GuildSetupRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetupGuild(ctx, payload.GuildID)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.GuildSetupCompleted, events.GuildSetupFailed), nil
}

// HandleUpdateGuildConfig handles the GuildConfigUpdateRequested event.
func (h *GuildHandlers) HandleUpdateGuildConfig(ctx context.Context, payload *events.GuildConfigUpdateRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.UpdateGuildConfig(ctx, payload)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.GuildConfigUpdated, events.GuildConfigUpdateFailed), nil
}

// HandleTeardownGuild handles the GuildTeardownRequested event.
func (h *GuildHandlers) HandleTeardownGuild(ctx context.Context, payload *events.GuildTeardownRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.TeardownGuild(ctx, payload.GuildID)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.GuildTeardownCompleted, events.GuildTeardownFailed), nil
}
