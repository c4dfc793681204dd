package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

const (
	pendingListKey = "storefront:outbox:pending"
	eventsHashKey  = "storefront:outbox:events"
)

// Event is a domain event awaiting relay to the message broker. Writing it
// in the same call path that mutates the order slot keeps the two from
// drifting apart when the broker is down.
type Event struct {
	ID            uuid.UUID       `json:"id"`
	EventType     string          `json:"eventType"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	Payload       json.RawMessage `json:"payload"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, eventType, aggregateType, aggregateID string, payload any) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type outboxRepository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &outboxRepository{rdb: rdb}
}

func (r *outboxRepository) Append(
	ctx context.Context,
	eventType, aggregateType, aggregateID string,
	payload any,
) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	event := Event{
		ID:            uuid.New(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       raw,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, eventsHashKey, event.ID.String(), data)
	pipe.RPush(ctx, pendingListKey, event.ID.String())
	_, err = pipe.Exec(ctx)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	ids, err := r.rdb.LRange(ctx, pendingListKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		data, err := r.rdb.HGet(ctx, eventsHashKey, id).Result()
		if err == redis.Nil {
			// Orphaned id, drop it from the queue.
			r.rdb.LRem(ctx, pendingListKey, 1, id)
			continue
		}
		if err != nil {
			return nil, err
		}

		var event Event
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			r.rdb.LRem(ctx, pendingListKey, 1, id)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, StatusSent)
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx, id, StatusFailed)
}

func (r *outboxRepository) setStatus(ctx context.Context, id uuid.UUID, status string) error {
	data, err := r.rdb.HGet(ctx, eventsHashKey, id.String()).Result()
	if err != nil {
		return err
	}

	var event Event
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return err
	}
	event.Status = status

	updated, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, eventsHashKey, id.String(), updated)
	pipe.LRem(ctx, pendingListKey, 1, id.String())
	_, err = pipe.Exec(ctx)
	return err
}
