package event

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gocabs/rideflow/internal/infra/database"
	"github.com/gocabs/rideflow/pkg/events"
	carrier "github.com/gocabs/rideflow/pkg/otel"
)

// OutboxDispatcher satisfies the dispatcher interface by writing rows instead
// of publishing. The relay moves them to the broker asynchronously, so a
// broker outage never fails a booking.
type OutboxDispatcher struct {
	outbox *database.OutboxRepository
}

func NewOutboxDispatcher(outbox *database.OutboxRepository) *OutboxDispatcher {
	return &OutboxDispatcher{outbox: outbox}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}
	return d.outbox.Insert(ctx, database.OutboxEvent{
		ID:       uuid.New(),
		Topic:    event.GetName(),
		Payload:  payload,
		Version:  1,
		TraceCtx: carrier.ExtractContextToJSON(ctx),
	})
}

func (d *OutboxDispatcher) DispatchRaw(ctx context.Context, topic string, payload []byte, headers map[string]string) error {
	e := database.OutboxEvent{
		ID:       uuid.New(),
		Topic:    topic,
		Payload:  payload,
		Version:  1,
		TraceCtx: carrier.ExtractContextToJSON(ctx),
	}
	if v, ok := headers["x-aggregate-id"]; ok {
		e.AggregateID = v
	}
	return d.outbox.Insert(ctx, e)
}
