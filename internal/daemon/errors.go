package daemon

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/theirongolddev/pocketguard/internal/model"
)

// HTTPError is the body of every error response.
type HTTPError struct {
	Error string `json:"error"`
}

// errBadRequest marks request parsing failures that are the client's fault.
var errBadRequest = errors.New("bad request")

// writeError maps err to a status code. Validation errors are 400, everything else
// is logged and reported as 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidBudget),
		errors.Is(err, model.ErrUnknownCategory),
		errors.Is(err, model.ErrUnknownMood),
		errors.Is(err, errBadRequest):
		c.JSON(http.StatusBadRequest, HTTPError{Error: err.Error()})
	default:
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, HTTPError{Error: "internal error"})
	}
}
