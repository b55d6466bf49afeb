package handler

import (
	"errors"

	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/dto"
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/middleware"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"
	ucauth "github.com/Barshamagar123/skill-matcher/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type validatable interface {
	Validate() error
}

// bindBody decodes the JSON body into req and runs its validation tags.
func bindBody(c fiber.Ctx, req validatable) error {
	if err := c.Bind().Body(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", dto.FieldErrors(err), err)
	}
	return nil
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var inputErr *usecase.InputError
	switch {
	case errors.As(err, &inputErr):
		return middleware.NewAppError(fiber.StatusBadRequest, inputErr.Reason, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resource not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "You do not have access to this resource", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Resource already exists", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidEmail),
		errors.Is(err, ucauth.ErrWeakPassword),
		errors.Is(err, ucauth.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return mapUsecaseError(err)
	}
}
