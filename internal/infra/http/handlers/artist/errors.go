package artist

import (
	"errors"
	"net/http"

	"github.com/angristan/artist-explorer/internal/app/services/artist"
)

const (
	msgMissingQuery      = `Query parameter "q" is required.`
	msgMissingName       = `Query parameter "name" is required.`
	msgArtistNotFound    = "Artist not found."
	msgTokenUnavailable  = "Could not acquire Spotify access token."
	msgSuggestUpstream   = "Spotify API error during suggestion search."
	msgSuggestInternal   = "Internal server error during suggestion fetch."
	msgSearchInternal    = "Internal server error during artist search."
	msgResolveUpstream   = "Error searching for artist."
	msgProfileUpstream   = "Error fetching artist profile."
	msgTopTracksUpstream = "Error fetching top tracks."
)

var upstreamMessages = map[string]string{
	artist.StepSuggest:   msgSuggestUpstream,
	artist.StepResolve:   msgResolveUpstream,
	artist.StepProfile:   msgProfileUpstream,
	artist.StepTopTracks: msgTopTracksUpstream,
}

// errorResponse maps a service error to the status and message sent back to
// the browser. internalMsg is used for anything without a dedicated mapping.
func errorResponse(err error, internalMsg string) (int, string) {
	var upstream *artist.UpstreamError
	switch {
	case errors.Is(err, artist.ErrInvalidQuery):
		return http.StatusBadRequest, msgMissingName
	case errors.Is(err, artist.ErrArtistNotFound):
		return http.StatusNotFound, msgArtistNotFound
	case errors.As(err, &upstream):
		msg, ok := upstreamMessages[upstream.Step]
		if !ok {
			msg = internalMsg
		}
		return upstream.Status, msg
	case errors.Is(err, artist.ErrAuth):
		return http.StatusInternalServerError, msgTokenUnavailable
	default:
		return http.StatusInternalServerError, internalMsg
	}
}
