package artist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	StepSuggest   = "suggest"
	StepResolve   = "resolve"
	StepProfile   = "profile"
	StepTopTracks = "topTracks"
)

// searchState is filled in step by step; every step after resolve relies on
// artistID being set.
type searchState struct {
	name      string
	artistID  string
	profile   json.RawMessage
	topTracks json.RawMessage
}

type searchStep struct {
	name string
	run  func(ctx context.Context, state *searchState) error
}

func (s ArtistService) searchPipeline() []searchStep {
	return []searchStep{
		{name: StepResolve, run: s.resolve},
		{name: StepProfile, run: s.fetchProfile},
		{name: StepTopTracks, run: s.fetchTopTracks},
	}
}

// Search resolves name to the best matching artist, then fetches its profile
// and top tracks. The first failing step ends the search.
func (s ArtistService) Search(ctx context.Context, name string) (Profile, error) {
	ctx, span := s.tracer.Start(ctx, "ArtistService.Search")
	defer span.End()

	name = strings.TrimSpace(name)
	span.SetAttributes(attribute.String("name", name))

	if name == "" {
		return nil, ErrInvalidQuery
	}

	state := &searchState{name: name}
	for _, step := range s.searchPipeline() {
		if err := step.run(ctx, state); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.WithError(err).WithFields(logrus.Fields{
				"name": name,
				"step": step.name,
			}).Warn("Artist search stopped")
			return nil, err
		}
	}

	profile, err := state.merge()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WithError(err).WithField("name", name).Warn("Artist profile could not be merged")
		return nil, err
	}

	return profile, nil
}

func (s ArtistService) resolve(ctx context.Context, state *searchState) error {
	artists, err := s.catalog.SearchArtists(ctx, state.name, 1)
	if err != nil {
		return classify(StepResolve, err)
	}
	if len(artists) == 0 {
		return ErrArtistNotFound
	}

	state.artistID = string(artists[0].ID)
	return nil
}

func (s ArtistService) fetchProfile(ctx context.Context, state *searchState) error {
	profile, err := s.catalog.GetArtist(ctx, state.artistID)
	if err != nil {
		return classify(StepProfile, err)
	}

	state.profile = profile
	return nil
}

func (s ArtistService) fetchTopTracks(ctx context.Context, state *searchState) error {
	tracks, err := s.catalog.GetArtistTopTracks(ctx, state.artistID, s.market)
	if err != nil {
		return classify(StepTopTracks, err)
	}

	state.topTracks = tracks
	return nil
}

var emptyTracks = json.RawMessage(`[]`)

// merge adds the top tracks to the profile object without touching any of
// its other fields. A null or missing track list becomes [].
func (state *searchState) merge() (Profile, error) {
	var profile Profile
	if err := json.Unmarshal(state.profile, &profile); err != nil {
		return nil, fmt.Errorf("%w: %s: decoding artist: %w", ErrSpotifyClient, StepProfile, err)
	}
	if profile == nil {
		profile = Profile{}
	}

	tracks := bytes.TrimSpace(state.topTracks)
	if len(tracks) == 0 || bytes.Equal(tracks, []byte("null")) {
		tracks = emptyTracks
	}
	profile["topTracks"] = json.RawMessage(tracks)

	return profile, nil
}
