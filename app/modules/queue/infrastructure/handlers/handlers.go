// Package queuehandlers wires queue events to the queue service.
package queuehandlers

import (
	queueservice "github.com/dannynotsmart/Ranked-Bedwars/app/modules/queue/application"
	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// QueueHandlers translates queue event payloads into service calls.
type QueueHandlers struct {
	service queueservice.Service
}

// NewQueueHandlers creates a new QueueHandlers instance.
func NewQueueHandlers(service queueservice.Service) *QueueHandlers {
	return &QueueHandlers{service: service}
}

func mapOperationResult(result queueservice.QueueOperationResult, successTopic, failureTopic string) []handlerwrapper.Result {
	if result.Success != nil {
		return []handlerwrapper.Result{{Topic: successTopic, Payload: result.Success}}
	}
	if result.Failure != nil {
		return []handlerwrapper.Result{{Topic: failureTopic, Payload: result.Failure}}
	}
	return nil
}
