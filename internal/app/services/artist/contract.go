package artist

import (
	"context"
	"encoding/json"

	spotifyLib "github.com/zmb3/spotify/v2"
)

type Catalog interface {
	SearchArtists(ctx context.Context, query string, limit int) ([]spotifyLib.FullArtist, error)
	GetArtist(ctx context.Context, id string) (json.RawMessage, error)
	GetArtistTopTracks(ctx context.Context, id string, market string) (json.RawMessage, error)
}
