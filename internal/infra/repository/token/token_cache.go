package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	// SafetyMargin is subtracted from the upstream lifetime so a token is never
	// served in the window where Spotify might already reject it.
	SafetyMargin = 5 * time.Minute
)

var ErrAuth = errors.New("spotify token exchange failed")

type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	HTTPClient   *http.Client
	Tracer       trace.Tracer
	Logger       logrus.FieldLogger

	// Now defaults to time.Now.
	Now func() time.Time
}

type credential struct {
	token     string
	expiresAt time.Time
}

// Cache holds the single process-wide bearer credential and refreshes it with
// a client-credentials exchange once it reaches its (margin-adjusted) expiry.
type Cache struct {
	config     clientcredentials.Config
	httpClient *http.Client
	tracer     trace.Tracer
	logger     logrus.FieldLogger
	now        func() time.Time

	mu      sync.RWMutex
	current *credential

	refresh singleflight.Group
}

func New(cfg Config) *Cache {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("token")
	}

	return &Cache{
		config: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: httpClient,
		tracer:     tracer,
		logger:     logger,
		now:        now,
	}
}

// Token returns the cached access token, exchanging client credentials for a
// new one when nothing is cached or the cached one is past its expiry.
func (c *Cache) Token(ctx context.Context) (string, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	ctx, span := c.tracer.Start(ctx, "TokenCache.Refresh")
	defer span.End()

	// Callers that find the token expired at the same time share one exchange.
	// It runs detached from ctx so one caller going away cannot fail the others.
	ch := c.refresh.DoChan("token", func() (any, error) {
		if token, ok := c.cached(); ok {
			return token, nil
		}
		return c.exchange(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return "", ctx.Err()
	case res := <-ch:
		span.SetAttributes(attribute.Bool("shared", res.Shared))
		if res.Err != nil {
			span.RecordError(res.Err)
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Warm performs the initial exchange so the first request does not pay for it.
func (c *Cache) Warm(ctx context.Context) error {
	_, err := c.Token(ctx)
	return err
}

// ExpiresAt reports when the cached token stops being served, or the zero
// time when nothing has been fetched yet.
func (c *Cache) ExpiresAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return time.Time{}
	}
	return c.current.expiresAt
}

func (c *Cache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil || !c.now().Before(c.current.expiresAt) {
		return "", false
	}
	return c.current.token, true
}

func (c *Cache) exchange(ctx context.Context) (string, error) {
	c.logger.Info("Requesting new Spotify access token")

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	requestedAt := c.now()
	tok, err := c.config.Token(ctx)
	if err != nil {
		c.logger.WithError(err).Error("Failed to get Spotify access token")
		return "", fmt.Errorf("%w: %w", ErrAuth, err)
	}
	if tok.AccessToken == "" {
		c.logger.Error("Spotify token response carried no access token")
		return "", fmt.Errorf("%w: empty access token", ErrAuth)
	}

	// oauth2 stamps Expiry against the wall clock; only the lifetime is kept.
	var ttl time.Duration
	if !tok.Expiry.IsZero() {
		ttl = time.Until(tok.Expiry)
	}

	cred := &credential{
		token:     tok.AccessToken,
		expiresAt: requestedAt.Add(ttl - SafetyMargin),
	}

	c.mu.Lock()
	c.current = cred
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"expires_at": cred.expiresAt.Format(time.RFC3339),
		"ttl":        ttl.Truncate(time.Second).String(),
	}).Info("New Spotify access token acquired")

	return cred.token, nil
}
