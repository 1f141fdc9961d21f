package place

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gocabs/rideflow/internal/application/port/outbound"
	"github.com/gocabs/rideflow/pkg/logger"
)

// minQueryLength is the shortest text, in runes, that triggers a provider
// lookup. Anything shorter returns an empty suggestion list without a call.
const minQueryLength = 3

const defaultLimit = 5

type SearchUseCaseImpl struct {
	Places outbound.PlaceSearch
	Logger logger.Logger
}

func NewSearchUseCase(places outbound.PlaceSearch, log logger.Logger) *SearchUseCaseImpl {
	return &SearchUseCaseImpl{Places: places, Logger: log}
}

func (uc *SearchUseCaseImpl) Execute(ctx context.Context, input SearchInput) (SearchOutput, error) {
	text := strings.TrimSpace(input.Text)
	if utf8.RuneCountInString(text) < minQueryLength {
		return SearchOutput{Suggestions: []Suggestion{}}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	places, err := uc.Places.Search(ctx, text, limit)
	if err != nil {
		// A failed lookup degrades to no suggestions instead of
		// surfacing an error to the caller typing a destination.
		uc.Logger.Warn(ctx, "place search failed",
			logger.String("query", text),
			logger.WithError(err),
		)
		return SearchOutput{Suggestions: []Suggestion{}}, nil
	}

	suggestions := make([]Suggestion, 0, len(places))
	for _, p := range places {
		suggestions = append(suggestions, Suggestion{
			Name:      p.Name,
			Country:   p.Country,
			Address:   p.Address,
			Latitude:  p.Point.Latitude,
			Longitude: p.Point.Longitude,
		})
	}
	return SearchOutput{Suggestions: suggestions}, nil
}
