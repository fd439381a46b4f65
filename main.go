package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appartist "github.com/angristan/artist-explorer/internal/app/services/artist"
	server "github.com/angristan/artist-explorer/internal/infra/http"
	handler "github.com/angristan/artist-explorer/internal/infra/http/handlers/artist"
	"github.com/angristan/artist-explorer/internal/infra/repository/spotify"
	"github.com/angristan/artist-explorer/internal/infra/repository/token"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

type app struct {
	env             *Env
	logger          *logrus.Logger
	tokens          *token.Cache
	service         appartist.ArtistService
	shutdownTracing func(context.Context) error
}

func newApp(ctx context.Context) (*app, error) {
	env, err := LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadEnv: %w", err)
	}

	logger := newLogger(env)

	shutdownTracing, err := setupTracing(ctx, env.OTELExporterEndpoint)
	if err != nil {
		return nil, fmt.Errorf("setupTracing: %w", err)
	}

	tracer := otel.Tracer(serviceName)
	httpClient := &http.Client{Timeout: env.HTTPTimeout}

	tokens := token.New(token.Config{
		ClientID:     env.SpotifyClientID,
		ClientSecret: env.SpotifyClientSecret,
		TokenURL:     env.SpotifyTokenURL,
		HTTPClient:   httpClient,
		Tracer:       tracer,
		Logger:       logger.WithField("component", "token"),
	})

	catalog := spotify.New(spotify.NewSpotifyClientConfig(
		env.SpotifyAPIURL,
		tokens,
		httpClient,
		tracer,
	))

	service := appartist.New(
		tracer,
		catalog,
		logger.WithField("component", "artist"),
		env.SpotifyMarket,
	)

	return &app{
		env:             env,
		logger:          logger,
		tokens:          tokens,
		service:         service,
		shutdownTracing: shutdownTracing,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdownTracing(ctx); err != nil {
		a.logger.WithError(err).Warn("Failed to flush traces")
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "artist-explorer",
		Short:        "Spotify artist lookup proxy",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP proxy",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newSearchCmd(),
		newSuggestCmd(),
	)

	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	h := handler.New(otel.Tracer(serviceName), a.service, a.logger.WithField("component", "http"))

	srv, err := server.New(
		server.NewConfig(a.env.Port, a.env.CORSAllowOrigins, a.env.HTTPTimeout, false),
		h,
		a.logger.WithField("component", "http"),
	)
	if err != nil {
		return err
	}

	// A failed warm-up is not fatal; the first request retries the exchange.
	go func() {
		if err := a.tokens.Warm(ctx); err != nil {
			a.logger.WithError(err).Warn("Initial Spotify token exchange failed")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
