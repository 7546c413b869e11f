package middleware

import (
	"log/slog"
	"net/http"

	"rating/internal/delivery/api/response"
	deliverycontext "rating/internal/delivery/context"
	domainerrors "rating/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// kindStatus is the single mapping from domain error kind to HTTP status.
var kindStatus = map[domainerrors.Kind]int{
	domainerrors.KindValidation: http.StatusBadRequest,
	domainerrors.KindNotFound:   http.StatusNotFound,
	domainerrors.KindInternal:   http.StatusInternalServerError,
}

// Messages for framework errors that carry no domain meaning.
var httpStatusMessages = map[int]string{
	http.StatusBadRequest:            "Invalid request body",
	http.StatusNotFound:              "Not found",
	http.StatusMethodNotAllowed:      "Method not allowed",
	http.StatusRequestEntityTooLarge: "Request body too large",
	http.StatusUnsupportedMediaType:  "Unsupported media type",
	http.StatusTooManyRequests:       "Too many requests",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// StatusFor returns the HTTP status for a domain error kind.
func StatusFor(kind domainerrors.Kind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := StatusFor(appErr.Kind())
		if status >= http.StatusInternalServerError {
			m.internal(c, err)

			return
		}

		_ = response.Error(c, status, appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.internal(c, err)

			return
		}

		message, ok := httpStatusMessages[httpErr.Code]
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.internal(c, err)
}

// internal logs the cause and answers with a generic 500
func (m *ErrorMiddleware) internal(c echo.Context, err error) {
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(c.Request().Context())),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c)
}
