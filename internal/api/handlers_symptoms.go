package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/services"
)

func (handler *Handler) GetTodaySymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	record, found, err := handler.symptomLogs.GetTodaySymptoms(user.ID, handler.currentTime(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no symptoms logged today")
	}
	return c.JSON(record)
}

func (handler *Handler) SaveTodaySymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.SymptomInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, created, err := handler.symptomLogs.SaveTodaySymptoms(user.ID, input, handler.currentTime(), handler.location)
	if err != nil {
		return symptomWriteAPIError(c, err)
	}
	return respondSavedRecord(c, record, created)
}

func (handler *Handler) SaveSymptomsForDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := services.ParseDay(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := services.SymptomInput{}
	if err := parseJSONBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, created, err := handler.symptomLogs.SaveSymptomsForDate(user.ID, day, input, handler.currentTime(), handler.location)
	if err != nil {
		return symptomWriteAPIError(c, err)
	}
	return respondSavedRecord(c, record, created)
}

func (handler *Handler) GetSymptomHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := services.DefaultHistoryDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid days")
		}
		days = parsed
	}

	records, err := handler.symptomLogs.GetSymptomHistory(user.ID, days, handler.currentTime(), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHistoryDays) {
			return apiError(c, fiber.StatusBadRequest, "invalid days")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}
	if records == nil {
		records = []models.SymptomRecord{}
	}
	return c.JSON(fiber.Map{"days": days, "records": records})
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recordID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || recordID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom record id")
	}

	if err := handler.symptomLogs.DeleteSymptom(user.ID, uint(recordID)); err != nil {
		return symptomDeleteAPIError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respondSavedRecord(c *fiber.Ctx, record models.SymptomRecord, created bool) error {
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(record)
}
