package matchhandlers

import (
	"context"
	"errors"

	"github.com/dannynotsmart/Ranked-Bedwars/app/events"
	matchservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// HandleSubmitScore handles the MatchScoreSubmissionRequested event.
func (h *MatchHandlers) HandleSubmitScore(ctx context.Context, payload *events.MatchScoreSubmissionRequestedPayload) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SubmitScore(ctx, matchservice.ScoreSubmission{
		GuildID:        payload.GuildID,
		MatchID:        payload.MatchID,
		Team1Score:     payload.Team1Score,
		Team2Score:     payload.Team2Score,
		SubmitterID:    payload.SubmitterID,
		SubmitterRoles: payload.SubmitterRoles,
	})
	if result.Success == nil && result.Failure == nil {
		return nil, err
	}

	return mapOperationResult(result, events.MatchFinalized, events.MatchScoreSubmissionFailed), nil
}
