// Package guildhandlers wires guild events to the guild service.
package guildhandlers

import (
	guildservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/guild/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// GuildHandlers translates guild event payloads into service calls.
type GuildHandlers struct {
	service guildservice.Service
}

// NewGuildHandlers creates a new GuildHandlers instance.
func NewGuildHandlers(service guildservice.Service) *GuildHandlers {
	return &GuildHandlers{service: service}
}

// mapOperationResult converts a service result into handler results on the
// given success and failure topics. Infrastructure errors produce no outgoing
// event; the caller returns them so the message is redelivered.
func mapOperationResult(result guildservice.GuildOperationResult, successTopic, failureTopic string) []handlerwrapper.Result {
	if result.Success != nil {
		return []handlerwrapper.Result{{Topic: successTopic, Payload: result.Success}}
	}
	if result.Failure != nil {
		return []handlerwrapper.Result{{Topic: failureTopic, Payload: result.Failure}}
	}
	return nil
}
