// Package userhandlers wires user events to the user service.
package userhandlers

import (
	"context"
	"errors"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	userservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/user/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// UserHandlers translates user event payloads into service calls.
type UserHandlers struct {
	service userservice.Service
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleBanUser handles the UserBanRequested event.
func (h *UserHandlers) HandleBanUser(ctx context.Context, payload *events.UserBanRequestedPayload) ([]handlerwrapper.Result, error) {
	return h.setBanState(ctx, payload, true, events.UserBanned)
}

// HandleUnbanUser handles the UserUnbanRequested event.
func (h *UserHandlers) HandleUnbanUser(ctx context.Context, payload *events.UserBanRequestedPayload) ([]handlerwrapper.Result, error) {
	return h.setBanState(ctx, payload, false, events.UserUnbanned)
}

func (h *UserHandlers) setBanState(ctx context.Context, payload *events.UserBanRequestedPayload, banned bool, successTopic string) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetBanState(ctx, payload.GuildID, payload.UserID, banned)
	switch {
	case result.Success != nil:
		return []handlerwrapper.Result{{Topic: successTopic, Payload: result.Success}}, nil
	case result.Failure != nil:
		return []handlerwrapper.Result{{Topic: events.UserBanFailed, Payload: result.Failure}}, nil
	default:
		return nil, err
	}
}
