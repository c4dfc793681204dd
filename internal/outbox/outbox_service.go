package outbox

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=outbox_service.go -destination=../mock/outbox/outbox_service_mock.go -package=mock

type Service interface {
	Start(ctx context.Context)
}

type Processor struct {
	repo   Repository
	writer *kafka.Writer
}

func NewProcessor(repo Repository, writer *kafka.Writer) *Processor {
	return &Processor{
		repo:   repo,
		writer: writer,
	}
}

func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	log.Println("[WORKER] Outbox processor started (polling every 5s)")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.processPending(ctx); err != nil {
				log.Printf("[WORKER] Error processing events: %v", err)
			}
		}
	}
}

func (p *Processor) processPending(ctx context.Context) error {
	events, err := p.repo.ListPending(ctx, 10)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	log.Printf("[WORKER] Processing %d pending events", len(events))

	for _, event := range events {
		msg := kafka.Message{
			Key:   []byte(event.AggregateID),
			Value: event.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.EventType)},
				{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			},
		}

		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("[WORKER] Failed to publish event %s: %v", event.ID, err)
			_ = p.repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := p.repo.MarkSent(ctx, event.ID); err != nil {
			log.Printf("[WORKER] Failed to mark event %s as SENT: %v", event.ID, err)
			continue
		}

		log.Printf("[WORKER] Event %s sent and marked successfully", event.ID)
	}

	return nil
}
