package artist

import (
	"context"

	"github.com/angristan/artist-explorer/internal/app/services/artist"
)

type ArtistService interface {
	Suggest(ctx context.Context, query string) ([]artist.Suggestion, error)
	Search(ctx context.Context, name string) (artist.Profile, error)
}
