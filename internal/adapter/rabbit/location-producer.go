package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NssGourav/shuttle-tracker/internal/domain/models"
	"github.com/NssGourav/shuttle-tracker/internal/domain/types"
	wrap "github.com/NssGourav/shuttle-tracker/pkg/logger/wrapper"
	"github.com/NssGourav/shuttle-tracker/pkg/rabbit"
	"github.com/rabbitmq/amqp091-go"
)

// LocationFanoutExchange receives every accepted driver location report.
const LocationFanoutExchange = "location_fanout"

type LocationProducer struct {
	client *rabbit.RabbitMQ
}

func NewLocationProducer(client *rabbit.RabbitMQ) (*LocationProducer, error) {
	if err := client.DeclareFanout(LocationFanoutExchange); err != nil {
		return nil, fmt.Errorf("failed to declare %s exchange: %w", LocationFanoutExchange, err)
	}
	return &LocationProducer{
		client: client,
	}, nil
}

// PublishLocationUpdate fans the accepted report out to any interested consumer.
func (p *LocationProducer) PublishLocationUpdate(ctx context.Context, event models.LocationUpdatedEvent) error {
	const op = "LocationProducer.PublishLocationUpdate"

	body, err := json.Marshal(event)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionEventMarshalFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal event: %w", op, err))
	}

	if err := p.client.Channel.PublishWithContext(
		ctx,
		LocationFanoutExchange,
		"",    // routing key (ignored by fanout)
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionEventPublishFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	return nil
}

// NoopProducer is used when RabbitMQ is disabled in the configuration.
type NoopProducer struct{}

func (NoopProducer) PublishLocationUpdate(context.Context, models.LocationUpdatedEvent) error {
	return nil
}
