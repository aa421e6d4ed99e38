// Package handlerwrapper adapts typed event handlers to watermill. A handler
// receives a decoded payload and returns zero or more results, each of which
// is published on its own subject.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MetadataSubject is the metadata key carrying the outgoing NATS subject.
const MetadataSubject = "subject"

// Result is one outgoing event produced by a handler.
type Result struct {
	Topic   string
	Payload any
}

// Publisher publishes a payload on a subject. Satisfied by eventbus.EventBus.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Deps carries the infrastructure a wrapped handler needs.
type Deps struct {
	Logger    *slog.Logger
	Tracer    trace.Tracer
	Publisher Publisher
}

// Wrap converts a typed handler into a watermill NoPublishHandlerFunc. The
// incoming payload is JSON-decoded into T; each result is published through
// deps.Publisher on its topic. A publish failure is returned so the message
// is redelivered.
func Wrap[T any](name string, deps Deps, handler func(ctx context.Context, payload *T) ([]Result, error)) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		ctx, span := deps.Tracer.Start(msg.Context(), name,
			trace.WithAttributes(attribute.String("message.uuid", msg.UUID)),
		)
		defer span.End()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			deps.Logger.Error("failed to decode event payload",
				slog.String("handler", name),
				slog.String("message_uuid", msg.UUID),
				slog.Any("error", err),
			)
			// Malformed payloads are not retryable; drop the message.
			return nil
		}

		results, err := handler(ctx, &payload)
		if err != nil {
			span.RecordError(err)
			return err
		}

		for _, res := range results {
			if err := deps.Publisher.Publish(ctx, res.Topic, res.Payload); err != nil {
				span.RecordError(err)
				return fmt.Errorf("failed to publish result to %s: %w", res.Topic, err)
			}
		}
		return nil
	}
}
