package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PaymentApplier is the use case the worker drives for each event.
type PaymentApplier interface {
	Execute(ctx context.Context, payload PaymentEventPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	Applier PaymentApplier
}

func NewWorker(ch *amqp.Channel, applier PaymentApplier) *Worker {
	return &Worker{
		Channel: ch,
		Applier: applier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload PaymentEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] malformed payment event: %s", err)
				// Poison message, reject without requeue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] payment event: lead=%d mode=%s", payload.LeadID, payload.Mode)

			if err := w.Applier.Execute(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] failed to apply payment event: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] payment worker waiting on queue '%s'", queueName)
	<-forever
}
