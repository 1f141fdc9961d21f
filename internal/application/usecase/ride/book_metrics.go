package ride

import (
	"context"
	"time"

	"github.com/gocabs/rideflow/pkg/metrics"
)

type BookMetricsDecorator struct {
	Next    BookUseCase
	Metrics metrics.Metrics
}

func (d *BookMetricsDecorator) Execute(ctx context.Context, input BookInput) (BookOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("BookRide", err == nil, time.Since(start))

	status := "booked"
	if err != nil {
		status = "rejected"
	}
	d.Metrics.RecordRideBooked(status)
	return output, err
}
