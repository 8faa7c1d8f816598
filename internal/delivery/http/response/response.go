// Package response writes the uniform catalog envelope onto the wire.
package response

import (
	"net/http"

	"farha/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope writes a usecase response as JSON. Soft failures still serialize
// with status 200; the envelope's Succeeded flag carries the outcome.
func Envelope[T any](c echo.Context, statusCode int, resp *usecase.Response[T]) error {
	return c.JSON(statusCode, resp)
}

// BindingError reports a malformed request body or form.
func BindingError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, usecase.Fail[any](message))
}
