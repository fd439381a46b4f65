package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`

	SpotifyTokenURL string `env:"SPOTIFY_TOKEN_URL" env-default:"https://accounts.spotify.com/api/token"`
	SpotifyAPIURL   string `env:"SPOTIFY_API_URL" env-default:"https://api.spotify.com/v1/"`
	SpotifyMarket   string `env:"SPOTIFY_MARKET" env-default:"US"`

	Port             string        `env:"PORT" env-default:"3001"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" env-default:"*" env-separator:","`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`

	OTELExporterEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

func LoadEnv() (*Env, error) {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, err
	}

	return &env, nil
}
