package ride

import (
	"context"
	"time"

	"github.com/gocabs/rideflow/pkg/metrics"
)

type RefreshMetricsDecorator struct {
	Next    RefreshUseCase
	Metrics metrics.Metrics
}

func (d *RefreshMetricsDecorator) Execute(ctx context.Context, input RefreshInput) (RefreshOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("RefreshDrivers", err == nil, time.Since(start))
	return output, err
}
