package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type kindMapping struct {
	kind   error
	status int
	code   string
}

var kindMappings = []kindMapping{
	{errs.ErrObjectNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "INVALID_INPUT"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "INVALID_INPUT"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "INVALID_INPUT"},
	{errs.ErrObjectAlreadyExists, http.StatusConflict, "CONFLICT"},
	{errs.ErrVersionIsInvalid, http.StatusConflict, "CONFLICT"},
	{errs.ErrAccessDenied, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrInvalidState, http.StatusUnprocessableEntity, "INVALID_STATE"},
}

// NewErrorHandler maps error kinds to status codes. Errors of no known kind
// are logged and answered with a generic 500.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "writing error response failed", "error", err)
		}
	}
}

func errorResponse(err error) (int, ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, ErrorResponse{Code: httpErrorCode(he.Code), Message: msg}
	}

	for _, m := range kindMappings {
		if !errors.Is(err, m.kind) {
			continue
		}
		code := m.code
		var be *errs.BusinessError
		if errors.As(err, &be) {
			code = be.Code
		}
		return m.status, ErrorResponse{Code: code, Message: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL", Message: "internal server error"}
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusBadRequest:
		return "INVALID_INPUT"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL"
		}
		return "ERROR"
	}
}
