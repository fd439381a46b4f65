package artist

import (
	"errors"
	"fmt"

	spotifyRepo "github.com/angristan/artist-explorer/internal/infra/repository/spotify"
	"github.com/angristan/artist-explorer/internal/infra/repository/token"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultMarket = "US"

	suggestionLimit = 5
	minQueryLength  = 2
)

type ArtistService struct {
	tracer  trace.Tracer
	catalog Catalog
	logger  logrus.FieldLogger
	market  string
}

func New(
	tracer trace.Tracer,
	catalog Catalog,
	logger logrus.FieldLogger,
	market string,
) ArtistService {
	if market == "" {
		market = DefaultMarket
	}

	return ArtistService{
		tracer:  tracer,
		catalog: catalog,
		logger:  logger,
		market:  market,
	}
}

var (
	ErrInvalidQuery   = errors.New("invalid query")
	ErrArtistNotFound = errors.New("artist not found")
	ErrAuth           = errors.New("could not acquire spotify access token")
	ErrSpotifyClient  = errors.New("spotify client error")
)

// UpstreamError reports a non-2xx Spotify response at a given step.
type UpstreamError struct {
	Step   string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d: %v", e.Step, e.Status, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func classify(step string, err error) error {
	var statusErr *spotifyRepo.StatusError
	switch {
	case errors.As(err, &statusErr):
		return &UpstreamError{Step: step, Status: statusErr.Status, Err: err}
	case errors.Is(err, token.ErrAuth):
		return fmt.Errorf("%w: %w", ErrAuth, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrSpotifyClient, step, err)
	}
}
