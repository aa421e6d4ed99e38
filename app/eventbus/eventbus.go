// Package eventbus provides the NATS JetStream event bus used by every
// module. Publishing and subscribing go through watermill so handlers stay
// transport-agnostic.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/dannynotsmart/Ranked-Bedwars/app/shared/handlerwrapper"
)

// EventBus is the publishing and subscribing surface handed to modules.
type EventBus interface {
	Publish(ctx context.Context, subject string, payload any) error
	Subscriber() message.Subscriber
	Close() error
}

type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	natsConn   *nc.Conn
	logger     *slog.Logger
}

// New connects to NATS, initializes the JetStream streams, and returns the
// bus.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	if err := InitializeStreams(ctx, js, logger); err != nil {
		natsConn.Close()
		return nil, err
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		publisher.Close()
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &eventBus{
		publisher:  publisher,
		subscriber: subscriber,
		natsConn:   natsConn,
		logger:     logger,
	}, nil
}

// Publish JSON-encodes the payload and publishes it on the subject.
func (eb *eventBus) Publish(ctx context.Context, subject string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload for %s: %w", subject, err)
	}

	msg := message.NewMessage(uuid.NewString(), encoded)
	msg.SetContext(ctx)
	msg.Metadata.Set(handlerwrapper.MetadataSubject, subject)
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, uuid.NewString())

	eb.logger.Debug("publishing event",
		slog.String("subject", subject),
		slog.String("message_uuid", msg.UUID),
	)

	if err := eb.publisher.Publish(subject, msg); err != nil {
		eb.logger.Error("failed to publish event",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Subscriber exposes the watermill subscriber for router registration.
func (eb *eventBus) Subscriber() message.Subscriber {
	return eb.subscriber
}

// Close tears down the publisher, subscriber, and the underlying connection.
func (eb *eventBus) Close() error {
	var firstErr error
	if err := eb.publisher.Close(); err != nil {
		firstErr = err
	}
	if err := eb.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	eb.natsConn.Close()
	return firstErr
}
