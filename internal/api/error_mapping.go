package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/services"
)

func registerAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return apiError(c, fiber.StatusConflict, "email already exists")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
}

func changePasswordAPIError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	case errors.Is(err, services.ErrPasswordUnchanged):
		return apiError(c, fiber.StatusBadRequest, "new password must differ from current password")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
}

func symptomWriteAPIError(c *fiber.Ctx, err error) error {
	var inputErr *services.SymptomInputError
	switch {
	case errors.As(err, &inputErr):
		return apiFieldError(c, fiber.StatusBadRequest, "invalid symptom input", inputErr.Fields)
	case errors.Is(err, services.ErrFutureSymptomDate):
		return apiError(c, fiber.StatusBadRequest, "date cannot be in the future")
	case errors.Is(err, services.ErrSymptomRecordLoadFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	case errors.Is(err, services.ErrSymptomRecordCreateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to create symptoms")
	case errors.Is(err, services.ErrSymptomRecordUpdateFailed):
		return apiError(c, fiber.StatusInternalServerError, "failed to update symptoms")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptoms")
	}
}

func symptomDeleteAPIError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrSymptomRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "symptom record not found")
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to delete symptoms")
}
