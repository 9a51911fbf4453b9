package v1

import (
	"errors"
	"net/http"

	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeError maps the service error taxonomy onto HTTP statuses. Internal
// causes are logged but never echoed verbatim to the caller.
func writeError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
	case errors.Is(err, service.ErrLogNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "log entry not found"})
	default:
		log.WithField("path", c.Path()).Errorf("request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeBadRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
