package artist

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Suggest returns up to five artists matching query, in Spotify's relevance
// order. It never returns a nil slice: on failure the suggestions are empty
// and the error says why, so callers can degrade to "no suggestions".
func (s ArtistService) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	ctx, span := s.tracer.Start(ctx, "ArtistService.Suggest")
	defer span.End()

	query = strings.TrimSpace(query)
	span.SetAttributes(attribute.String("query", query))

	suggestions := []Suggestion{}
	if utf8.RuneCountInString(query) < minQueryLength {
		return suggestions, nil
	}

	artists, err := s.catalog.SearchArtists(ctx, query, suggestionLimit)
	if err != nil {
		err = classify(StepSuggest, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).WithField("query", query).Warn("Suggestion search failed")
		return suggestions, err
	}

	for _, a := range artists {
		suggestions = append(suggestions, Suggestion{
			ID:   string(a.ID),
			Name: a.Name,
		})
	}

	span.SetAttributes(attribute.Int("suggestions", len(suggestions)))

	return suggestions, nil
}
