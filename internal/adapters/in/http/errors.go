package http

import (
	"errors"
	"net/http"

	"eligibility/internal/generated/servers"
	"eligibility/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse maps application errors to status codes. Client errors echo the error text;
// anything else is logged and answered with fallback.
func (s *Server) errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case isClientError(err):
		return badRequest(ctx, err.Error())
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	if fallback == "" {
		fallback = http.StatusText(http.StatusInternalServerError)
	}
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: fallback,
	})
}

func isClientError(err error) bool {
	for _, target := range []error{
		errs.ErrMalformedRule,
		errs.ErrInvalidPackage,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsRequired,
		errs.ErrValueIsOutOfRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
