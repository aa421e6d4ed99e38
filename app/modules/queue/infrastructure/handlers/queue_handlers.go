package queuehandlers

import (
	"context"
	"errors"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	queueservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// HandleJoinQueue handles the QueueJoinRequested event. When the join fills
// the pool to the match size, a formation attempt runs in the same handler so
// the front-end learns about the new match without a second round trip. The
// formed match carries no channel identifiers on this path; the front-end
// reacts to MatchFormed by creating the channels.
func (h *QueueHandlers) HandleJoinQueue(ctx context.Context, payload *events.QueueJoinRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Enqueue(ctx, payload.GuildID, payload.UserID, payload.Username)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	out := mapOperationResult(result, events.QueuePlayerJoined, events.QueueJoinFailed)
	if result.Success == nil {
		return out, nil
	}

	if h.service.PoolSize(payload.GuildID) >= h.service.MatchSize() {
		formed, err := h.service.TryFormMatch(ctx, payload.GuildID, queueservice.ChannelAssignment{})
		if errors.Is(err, queueservice.ErrInsufficientPlayers) {
			// Another trigger drained the pool first.
			return out, nil
		}
		out = append(out, mapOperationResult(formed, events.MatchFormed, events.MatchFormationFailed)...)
	}
	return out, nil
}

// HandleLeaveQueue handles the QueueLeaveRequested event.
func (h *QueueHandlers) HandleLeaveQueue(ctx context.Context, payload *events.QueueLeaveRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Dequeue(ctx, payload.GuildID, payload.UserID)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.QueuePlayerLeft, events.QueueLeaveFailed), nil
}

// HandleFormMatch handles the MatchFormRequested event, used when the
// front-end has already provisioned the match channels and wants their
// identifiers recorded on the match row.
func (h *QueueHandlers) HandleFormMatch(ctx context.Context, payload *events.MatchFormRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	channels := queueservice.ChannelAssignment{
		VoiceChannelID: payload.VoiceChannelID,
		TextChannelID:  payload.TextChannelID,
	}
	result, err := h.service.TryFormMatch(ctx, payload.GuildID, channels)
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.MatchFormed, events.MatchFormationFailed), nil
}
