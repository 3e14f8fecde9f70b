package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/predictor"
)

func (handler *Handler) GetPredictions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	targetDate, err := handler.optionalDayQuery(c, "target_date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid target date")
	}

	report, err := handler.insights.PredictForUser(user.ID, targetDate, handler.currentTime(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}

	return c.JSON(fiber.Map{
		"target_date":        report.TargetDate.Format(models.DateLayout),
		"predicted_symptoms": nonNilPredicted(report.Prediction.PredictedSymptoms),
		"confidence_score":   report.Prediction.ConfidenceScore,
	})
}

func (handler *Handler) GetSuggestions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	targetDate, err := handler.optionalDayQuery(c, "target_date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid target date")
	}

	report, err := handler.insights.SuggestForUser(user.ID, targetDate, handler.currentTime(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}

	language := handler.currentLanguage(c)
	c.Set(fiber.HeaderContentLanguage, language)

	basedOn := report.Suggestions.BasedOnSymptoms
	if basedOn == nil {
		basedOn = []string{}
	}
	return c.JSON(fiber.Map{
		"target_date":       report.TargetDate.Format(models.DateLayout),
		"suggestions":       handler.localizeSuggestions(language, report.Suggestions.Suggestions),
		"based_on_symptoms": basedOn,
		"prediction": fiber.Map{
			"predicted_symptoms": nonNilPredicted(report.Prediction.PredictedSymptoms),
			"confidence_score":   report.Prediction.ConfidenceScore,
		},
	})
}

// localizeSuggestions replaces catalog text with the language's copy. Keys
// missing from every catalog keep the built-in English text.
func (handler *Handler) localizeSuggestions(language string, suggestions []predictor.Suggestion) []predictor.Suggestion {
	localized := make([]predictor.Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		if title, ok := handler.i18n.Lookup(language, "suggestion."+suggestion.Key+".title"); ok {
			suggestion.Title = title
		}
		if description, ok := handler.i18n.Lookup(language, "suggestion."+suggestion.Key+".description"); ok {
			suggestion.Description = description
		}
		localized = append(localized, suggestion)
	}
	return localized
}

func nonNilPredicted(predicted []predictor.PredictedSymptom) []predictor.PredictedSymptom {
	if predicted == nil {
		return []predictor.PredictedSymptom{}
	}
	return predicted
}
