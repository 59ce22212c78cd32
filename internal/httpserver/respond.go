package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urban-monkey/storefront/internal/logging"
	"github.com/urban-monkey/storefront/internal/service"
)

// errorBody mirrors the wire shape clients already parse: a stable generic
// message plus the underlying detail string.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// fail maps service sentinels onto the HTTP taxonomy. Anything that is not
// a validation or not-found failure is an upstream failure: logged,
// surfaced verbatim with a generic message, never retried.
func fail(c echo.Context, generic string, err error) error {
	l := logging.FromContext(c.Request().Context())

	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(generic, "status", http.StatusBadRequest, "error", err)
		return c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		l.Warn(generic, "status", http.StatusNotFound, "error", err)
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	default:
		l.Error(generic, "status", http.StatusInternalServerError, "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody{Error: generic, Details: err.Error()})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorBody{Error: msg})
}
