package place

import "context"

type SearchUseCase interface {
	Execute(ctx context.Context, input SearchInput) (SearchOutput, error)
}
