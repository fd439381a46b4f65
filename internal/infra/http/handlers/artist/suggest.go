package artist

import (
	"net/http"

	"github.com/angristan/artist-explorer/internal/app/services/artist"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

func (h *ArtistHandler) Suggest(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "ArtistHandler.Suggest")
	defer span.End()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingQuery})
		return
	}

	span.SetAttributes(attribute.String("query", query))

	suggestions, err := h.artistService.Suggest(ctx, query)
	if suggestions == nil {
		suggestions = []artist.Suggestion{}
	}
	if err != nil {
		status, msg := errorResponse(err, msgSuggestInternal)
		h.logger.WithError(err).WithField("status", status).Error("Error in /api/suggest")
		// The browser treats any failure here as "no suggestions".
		c.JSON(status, gin.H{"error": msg, "suggestions": suggestions})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
