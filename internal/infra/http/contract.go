package server

import (
	"github.com/gin-gonic/gin"
)

type ArtistHandler interface {
	Suggest(ctx *gin.Context)
	Search(ctx *gin.Context)
}
