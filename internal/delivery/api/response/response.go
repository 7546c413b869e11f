// Package response writes the JSON bodies of the HTTP API. Successful
// responses are the bare resource; failures are {"error": "<message>"}.
package response

import (
	"net/http"

	domainerrors "rating/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrInvalidBody is returned when a request body cannot be decoded.
var ErrInvalidBody = domainerrors.NewValidationError("Invalid request body")

// Success writes data as the whole response body
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created returns a 201 response
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// NotFound returns a 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError returns a 500 error without exposing details
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
