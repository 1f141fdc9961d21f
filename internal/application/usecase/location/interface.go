package location

import "context"

type ResolveUseCase interface {
	Execute(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}

type DestinationUseCase interface {
	Execute(ctx context.Context, input DestinationInput) (DestinationOutput, error)
}
