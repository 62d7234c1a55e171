package http

import (
	"errors"
	"net/http"

	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusUnprocessableEntity
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unclassified errors are logged and
// their text is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code != http.StatusInternalServerError {
		return ctx.JSON(code, Error{Code: code, Message: err.Error()})
	}

	s.log.Error("request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return ctx.JSON(code, Error{Code: code, Message: http.StatusText(code)})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
