package server

import "time"

type Config struct {
	Port         string
	AllowOrigins []string

	// UpstreamTimeout bounds each outbound Spotify call. The server write
	// timeout is sized so a full search fits inside it.
	UpstreamTimeout time.Duration

	disableMiddleware bool
}

func NewConfig(
	port string,
	allowOrigins []string,
	upstreamTimeout time.Duration,
	disableMiddleware bool,
) Config {
	return Config{
		Port:              port,
		AllowOrigins:      allowOrigins,
		UpstreamTimeout:   upstreamTimeout,
		disableMiddleware: disableMiddleware,
	}
}
