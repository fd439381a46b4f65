package artist

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

func (h *ArtistHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "ArtistHandler.Search")
	defer span.End()

	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingName})
		return
	}

	span.SetAttributes(attribute.String("name", name))

	profile, err := h.artistService.Search(ctx, name)
	if err != nil {
		status, msg := errorResponse(err, msgSearchInternal)
		if status >= http.StatusInternalServerError {
			h.logger.WithError(err).WithField("status", status).Error("Error in /api/search")
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, profile)
}
