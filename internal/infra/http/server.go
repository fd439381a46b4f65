package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	serviceName = "artist-explorer"

	defaultUpstreamTimeout = 10 * time.Second

	// A search is one token exchange plus three sequential Web API calls.
	upstreamCallsPerRequest = 4
	writeTimeoutSlack       = 5 * time.Second
)

type Server struct {
	*http.Server
}

func New(cfg Config, ah ArtistHandler, logger logrus.FieldLogger) (*Server, error) {
	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           NewEngine(cfg, ah, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout(cfg.UpstreamTimeout),
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}

func writeTimeout(upstream time.Duration) time.Duration {
	if upstream <= 0 {
		upstream = defaultUpstreamTimeout
	}
	return upstreamCallsPerRequest*upstream + writeTimeoutSlack
}

func NewEngine(cfg Config, ah ArtistHandler, logger logrus.FieldLogger) *gin.Engine {
	engine := gin.New()

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(requestLogger(logger))
		engine.Use(otelgin.Middleware(serviceName))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	engine.Use(cors.New(corsConfig))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/suggest", ah.Suggest)
	api.GET("/search", ah.Search)

	return engine
}
