package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PaymentEventPayload is the correlation the gateway webhook hands to
// the worker. Mode says which leg of the quote was paid.
type PaymentEventPayload struct {
	LeadID      int    `json:"lead_id"`
	Mode        string `json:"mode"` // full | deposit
	AmountCents int64  `json:"amount_cents"`
	SessionID   string `json:"session_id"`
	Origin      string `json:"origin"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishPaymentEvent(ctx context.Context, payload PaymentEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish payment event: %v", err)
	}

	return nil
}
