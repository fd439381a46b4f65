package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultBaseURL = "https://api.spotify.com/v1/"

type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type SpotifyClientConfig struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	tracer     trace.Tracer
}

func NewSpotifyClientConfig(
	baseURL string,
	tokens TokenProvider,
	httpClient *http.Client,
	tracer trace.Tracer,
) *SpotifyClientConfig {
	return &SpotifyClientConfig{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: httpClient,
		tracer:     tracer,
	}
}

type SpotifyClient struct {
	tracer     trace.Tracer
	baseURL    string
	httpClient *http.Client
	apiClient  *spotifyLib.Client
}

func New(config *SpotifyClientConfig) *SpotifyClient {
	baseURL := config.baseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	var base http.RoundTripper
	timeout := 10 * time.Second
	if config.httpClient != nil {
		base = config.httpClient.Transport
		timeout = config.httpClient.Timeout
	}

	httpClient := &http.Client{
		Transport: &bearerTransport{base: base, tokens: config.tokens},
		Timeout:   timeout,
	}

	return &SpotifyClient{
		tracer:     config.tracer,
		baseURL:    baseURL,
		httpClient: httpClient,
		apiClient:  spotifyLib.New(httpClient, spotifyLib.WithBaseURL(baseURL)),
	}
}

// StatusError is a non-2xx answer from the Spotify Web API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spotify: HTTP %d: %s", e.Status, e.Message)
}

func (client *SpotifyClient) SearchArtists(ctx context.Context, query string, limit int) ([]spotifyLib.FullArtist, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.SearchArtists")
	defer span.End()

	span.SetAttributes(
		attribute.String("query", query),
		attribute.Int("limit", limit),
	)

	ctx, status := recordStatus(ctx)
	results, err := client.apiClient.Search(ctx, query, spotifyLib.SearchTypeArtist, spotifyLib.Limit(limit))
	if err != nil {
		return nil, client.fail(span, status, "client.apiClient.Search", err)
	}

	if results.Artists == nil {
		return nil, nil
	}
	return results.Artists.Artists, nil
}

// GetArtist returns the artist object exactly as Spotify sent it.
func (client *SpotifyClient) GetArtist(ctx context.Context, id string) (json.RawMessage, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.GetArtist")
	defer span.End()

	span.SetAttributes(attribute.String("artist_id", id))

	ctx, status := recordStatus(ctx)
	artist, err := client.getRaw(ctx, "artists/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, client.fail(span, status, "client.getRaw(artist)", err)
	}

	return artist, nil
}

// GetArtistTopTracks returns the raw "tracks" array of the top-tracks
// response. It is nil when the field is absent and "null" when it is null.
func (client *SpotifyClient) GetArtistTopTracks(ctx context.Context, id string, market string) (json.RawMessage, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.GetArtistTopTracks")
	defer span.End()

	span.SetAttributes(
		attribute.String("artist_id", id),
		attribute.String("market", market),
	)

	ctx, status := recordStatus(ctx)
	body, err := client.getRaw(ctx, "artists/"+url.PathEscape(id)+"/top-tracks", url.Values{"market": {market}})
	if err != nil {
		return nil, client.fail(span, status, "client.getRaw(top-tracks)", err)
	}

	var result struct {
		Tracks json.RawMessage `json:"tracks"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, client.fail(span, status, "json.Unmarshal(top-tracks)", err)
	}

	return result.Tracks, nil
}

// getRaw issues an authorized GET against the Web API and returns the body
// untouched.
func (client *SpotifyClient) getRaw(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	target := client.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeStatusError(resp.StatusCode, body)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON in %s response", path)
	}

	return body, nil
}

func decodeStatusError(status int, body []byte) *StatusError {
	statusErr := &StatusError{Status: status, Message: http.StatusText(status)}

	var envelope struct {
		Error spotifyLib.Error `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		statusErr.Message = envelope.Error.Message
	}

	return statusErr
}

func (client *SpotifyClient) fail(span trace.Span, status *responseStatus, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		statusErr = &StatusError{Status: status.code, Message: err.Error()}

		// The library only fills Error when the body is a JSON error envelope.
		var apiErr spotifyLib.Error
		if errors.As(err, &apiErr) {
			statusErr.Message = apiErr.Message
			if statusErr.Status < http.StatusMultipleChoices {
				statusErr.Status = apiErr.Status
			}
		}
	}

	if statusErr.Status < http.StatusMultipleChoices {
		return fmt.Errorf("%s: %w", op, err)
	}

	span.SetAttributes(attribute.Int("status", statusErr.Status))
	return fmt.Errorf("%s: %w", op, statusErr)
}

type responseStatusKey struct{}

// responseStatus carries the status of the final upstream response out of
// the transport. Redirect hops are overwritten by the response they lead to.
type responseStatus struct {
	code int
}

func recordStatus(ctx context.Context) (context.Context, *responseStatus) {
	status := &responseStatus{}
	return context.WithValue(ctx, responseStatusKey{}, status), status
}

// bearerTransport asks the token provider for a token on every outbound
// request, so an expired credential is refreshed before the call goes out.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenProvider
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, err
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	authorized := req.Clone(req.Context())
	authorized.Header.Set("Authorization", "Bearer "+token)

	resp, err := base.RoundTrip(authorized)
	if err != nil {
		return nil, err
	}

	if status, ok := req.Context().Value(responseStatusKey{}).(*responseStatus); ok {
		status.code = resp.StatusCode
	}

	return resp, nil
}
