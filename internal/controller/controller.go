package controller

import (
	"net/http"
	"strconv"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single funnel normalizing every failure to the
// `{error: string}` shape. Internal details never reach the client; they
// are logged server-side.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Validation, apperr.State:
		status = http.StatusBadRequest
	case apperr.Auth:
		status = http.StatusUnauthorized
	case apperr.Forbidden:
		status = http.StatusForbidden
	case apperr.NotFound:
		status = http.StatusNotFound
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled error")
	}
	ctx.JSON(status, dto.ErrorResponse{Error: apperr.MessageOf(err)})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		respondError(ctx, apperr.Validationf("Invalid %s format", name))
		return 0, false
	}
	return uint(value), true
}
