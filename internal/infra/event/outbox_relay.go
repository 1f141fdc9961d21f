package event

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gocabs/rideflow/internal/infra/database"
	"github.com/gocabs/rideflow/pkg/events"
	"github.com/gocabs/rideflow/pkg/logger"
	carrier "github.com/gocabs/rideflow/pkg/otel"
)

// OutboxRelay drains pending outbox rows into the broker. Claiming happens
// in a short transaction; the network publish runs outside it.
type OutboxRelay struct {
	outbox     *database.OutboxRepository
	dispatcher events.EventDispatcher
	logger     logger.Logger
	batchSize  int32
	workers    int
}

func NewOutboxRelay(outbox *database.OutboxRepository, disp events.EventDispatcher, log logger.Logger) *OutboxRelay {
	return &OutboxRelay{
		outbox:     outbox,
		dispatcher: disp,
		logger:     log,
		batchSize:  100,
		workers:    10,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.processBatch(ctx)
		}
	}
}

func (r *OutboxRelay) processBatch(ctx context.Context) {
	pending, err := r.outbox.FetchAndClaim(ctx, r.batchSize)
	if err != nil {
		r.logger.Error(ctx, "Failed to fetch outbox batch", logger.WithError(err))
		return
	}
	if len(pending) == 0 {
		return
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, evt := range pending {
		g.Go(func() error {
			return r.publishOne(gCtx, evt)
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Error(ctx, "Outbox batch had errors", logger.WithError(err))
	}
}

func (r *OutboxRelay) publishOne(ctx context.Context, evt database.OutboxEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ctx = carrier.InjectContextFromJSON(ctx, evt.TraceCtx)

	headers := map[string]string{
		"x-event-version": strconv.FormatInt(int64(evt.Version), 10),
		"x-event-id":      evt.ID.String(),
		"x-aggregate-id":  evt.AggregateID,
	}

	if err := r.dispatcher.DispatchRaw(ctx, evt.Topic, evt.Payload, headers); err != nil {
		r.logger.Warn(ctx, "Failed to publish outbox event",
			logger.String("id", evt.ID.String()),
			logger.WithError(err))
		return r.outbox.MarkFailed(context.Background(), evt.ID, err.Error())
	}

	return r.outbox.MarkPublished(context.Background(), evt.ID)
}

// RunRescuer periodically unsticks crashed claims and prunes published rows.
func (r *OutboxRelay) RunRescuer(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.outbox.ResetStuck(ctx, "5 minutes"); err != nil {
				r.logger.Error(ctx, "Failed to reset stuck outbox events", logger.WithError(err))
			}
			if err := r.outbox.DeleteOld(ctx, "7 days"); err != nil {
				r.logger.Error(ctx, "Outbox cleanup failed", logger.WithError(err))
			}
		}
	}
}
