package ride

import (
	"context"
)

type RefreshUseCase interface {
	Execute(ctx context.Context, input RefreshInput) (RefreshOutput, error)
}

type EnrichUseCase interface {
	Execute(ctx context.Context, input EnrichInput) error
}

type BookUseCase interface {
	Execute(ctx context.Context, input BookInput) (BookOutput, error)
}
