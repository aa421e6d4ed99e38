// Package matchhandlers wires match events to the match service.
package matchhandlers

import (
	matchservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/match/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// MatchHandlers translates match event payloads into service calls.
type MatchHandlers struct {
	service matchservice.Service
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(service matchservice.Service) *MatchHandlers {
	return &MatchHandlers{service: service}
}

func mapOperationResult(result matchservice.MatchOperationResult, successTopic, failureTopic string) []handlerwrapper.Result {
	if result.Success != nil {
		return []handlerwrapper.Result{{Topic: successTopic, Payload: result.Success}}
	}
	if result.Failure != nil {
		return []handlerwrapper.Result{{Topic: failureTopic, Payload: result.Failure}}
	}
	return nil
}
