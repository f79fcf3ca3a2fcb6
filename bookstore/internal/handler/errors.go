package handler

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/errs"
)

const (
	validationMessage = "The given data was invalid."
	internalMessage   = "internal server error"
)

var badRequest = []error{
	errs.ErrBookUnavailable,
	errs.ErrAlreadyReturned,
	errs.ErrAmountMismatch,
	errs.ErrMembershipExpired,
	errs.ErrInvalidTransition,
	errs.ErrOutOfStock,
	errs.ErrEmptyCart,
}

// fail maps service errors to HTTP responses. Unknown errors are logged and
// answered with a generic 500.
func (h *Handler) fail(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	var fe errs.FieldErrors
	if errors.As(err, &fe) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errs.ValidationErrorResponse{
			Message: validationMessage,
			Errors:  fe,
		})
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errs.ValidationErrorResponse{
			Message: validationMessage,
			Errors:  fieldErrors(ve),
		})
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	h.log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, internalMessage)
}

func fieldErrors(ve validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fieldName(fe)] = fieldMessage(fe)
	}
	return out
}

// fieldName is the json path of the failing field, without the root struct
// and without embedded struct names.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && unicode.IsUpper(rune(p[0])) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return fe.Field()
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must be numeric"
	case "cardexpiry":
		return "must be in MM/YY format"
	}
	return "is invalid"
}
