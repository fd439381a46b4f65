package artist

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type ArtistHandler struct {
	tracer        trace.Tracer
	artistService ArtistService
	logger        logrus.FieldLogger
}

func New(
	tracer trace.Tracer,
	artistService ArtistService,
	logger logrus.FieldLogger,
) *ArtistHandler {
	return &ArtistHandler{
		tracer:        tracer,
		artistService: artistService,
		logger:        logger,
	}
}
