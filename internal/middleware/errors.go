package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/screenpulse/internal/analytics"
	"github.com/guttosm/screenpulse/internal/domain/dto"
	"github.com/guttosm/screenpulse/internal/logger"
)

// ErrorHandler renders errors attached with c.Error when the handler did
// not write a response itself.
//
// The status is taken from the handler if it already set one >= 400,
// otherwise it is derived from the last error: benchmark shape errors map
// to 422 and everything else to 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = statusFor(err)
	}

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Err(err).
		Str("request_id", toString(rid)).
		Int("status", status).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(http.StatusText(status), err))
}

// AbortWithError stops the chain and writes an ErrorResponse with the
// given status and message. err may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

func statusFor(err error) int {
	if errors.Is(err, analytics.ErrDatasetShape) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
