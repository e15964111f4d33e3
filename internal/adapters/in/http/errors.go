package http

import (
	"errors"
	"net/http"

	"grameego/internal/core/application/usecases/commands"
	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and application errors onto HTTP statuses.
// Lifecycle conflicts map to 409, ownership failures to 403.
func respondError(ctx echo.Context, err error) error {
	var (
		invalidState      *errs.InvalidStateError
		alreadyAssigned   *errs.AlreadyAssignedError
		notOwner          *errs.NotOwnerError
		illegalTransition *errs.IllegalTransitionError
		validation        *errs.ValidationError
		notFound          *errs.ObjectNotFoundError
		validatorErrs     validator.ValidationErrors
	)

	switch {
	case errors.As(err, &notFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.As(err, &notOwner):
		return respond(ctx, http.StatusForbidden, err)
	case errors.As(err, &alreadyAssigned),
		errors.As(err, &invalidState),
		errors.As(err, &illegalTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return respond(ctx, http.StatusConflict, err)
	case errors.As(err, &validation),
		errors.As(err, &validatorErrs),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, token.ErrTokenExpired):
		return respond(ctx, http.StatusUnauthorized, err)
	case errors.Is(err, commands.ErrMobileAlreadyRegistered):
		return respond(ctx, http.StatusConflict, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func respond(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}
