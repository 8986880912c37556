package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-mailer/internal/entity"
)

type Producer struct {
	Ch Channel
}

func NewProducer(ch Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishEmailGenerated(ctx context.Context, event entity.EmailGeneratedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Timestamp:    event.GeneratedAt,
			Type:         "email.generated",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to rabbitmq: %w", err)
	}
	return nil
}
