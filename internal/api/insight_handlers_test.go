package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/florette/internal/predictor"
)

type predictionResponse struct {
	TargetDate        string                       `json:"target_date"`
	PredictedSymptoms []predictor.PredictedSymptom `json:"predicted_symptoms"`
	ConfidenceScore   float64                      `json:"confidence_score"`
}

type suggestionsResponse struct {
	TargetDate      string                 `json:"target_date"`
	Suggestions     []predictor.Suggestion `json:"suggestions"`
	BasedOnSymptoms []string               `json:"based_on_symptoms"`
	Prediction      predictionResponse     `json:"prediction"`
}

func seedCrampyWeek(t *testing.T, ta *testApp, token string) {
	t.Helper()
	for _, day := range []string{"2026-03-08", "2026-03-09", "2026-03-10"} {
		response := ta.do(t, http.MethodPut, "/api/symptoms/"+day, token, map[string]any{
			"cramps":  "strong",
			"fatigue": true,
		})
		expectStatus(t, response, http.StatusCreated)
	}
}

func TestPredictionsWithoutHistory(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "nohistory@example.com", "StrongPass1", false)

	response := ta.do(t, http.MethodGet, "/api/symptoms/predictions", authTokenForUser(t, user), nil)
	expectStatus(t, response, http.StatusOK)
	payload := decodeJSON[predictionResponse](t, response)
	if payload.TargetDate != "2026-03-11" {
		t.Fatalf("expected default target date 2026-03-11, got %q", payload.TargetDate)
	}
	if len(payload.PredictedSymptoms) != 0 || payload.ConfidenceScore != 0 {
		t.Fatalf("expected empty prediction, got %#v", payload)
	}
}

func TestPredictionsFromHistory(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "predict@example.com", "StrongPass1", false)
	token := authTokenForUser(t, user)
	seedCrampyWeek(t, ta, token)

	response := ta.do(t, http.MethodGet, "/api/symptoms/predictions?target_date=2026-03-12", token, nil)
	expectStatus(t, response, http.StatusOK)
	payload := decodeJSON[predictionResponse](t, response)

	if payload.TargetDate != "2026-03-12" {
		t.Fatalf("expected target date 2026-03-12, got %q", payload.TargetDate)
	}
	if len(payload.PredictedSymptoms) != 2 {
		t.Fatalf("expected cramps and fatigue predicted, got %#v", payload.PredictedSymptoms)
	}
	if payload.PredictedSymptoms[0].Symptom != predictor.SymptomCramps || payload.PredictedSymptoms[0].Probability != 1 {
		t.Fatalf("expected cramps first with probability 1, got %#v", payload.PredictedSymptoms[0])
	}
	if payload.PredictedSymptoms[0].Confidence != predictor.ConfidenceHigh {
		t.Fatalf("expected high confidence, got %q", payload.PredictedSymptoms[0].Confidence)
	}
	if payload.ConfidenceScore != 1 {
		t.Fatalf("expected confidence score 1, got %v", payload.ConfidenceScore)
	}
}

func TestPredictionsRejectInvalidTargetDate(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "target@example.com", "StrongPass1", false)

	response := ta.do(t, http.MethodGet, "/api/symptoms/predictions?target_date=tomorrow", authTokenForUser(t, user), nil)
	expectError(t, response, http.StatusBadRequest, "invalid target date")
}

func TestSuggestionsWithoutHistoryKeepGeneralAdvice(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "general@example.com", "StrongPass1", false)

	response := ta.do(t, http.MethodGet, "/api/symptoms/suggestions", authTokenForUser(t, user), nil)
	expectStatus(t, response, http.StatusOK)
	payload := decodeJSON[suggestionsResponse](t, response)

	if len(payload.Suggestions) != 2 {
		t.Fatalf("expected hydration and nutrition only, got %#v", payload.Suggestions)
	}
	if payload.Suggestions[0].Key != predictor.KeyHydration || payload.Suggestions[1].Key != predictor.KeyNutrition {
		t.Fatalf("unexpected general suggestions %#v", payload.Suggestions)
	}
	if payload.BasedOnSymptoms == nil || len(payload.BasedOnSymptoms) != 0 {
		t.Fatalf("expected empty based_on_symptoms, got %#v", payload.BasedOnSymptoms)
	}
}

func TestSuggestionsCombineCurrentAndPredicted(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "suggest@example.com", "StrongPass1", false)
	token := authTokenForUser(t, user)
	seedCrampyWeek(t, ta, token)

	response := ta.do(t, http.MethodGet, "/api/symptoms/suggestions", token, nil)
	expectStatus(t, response, http.StatusOK)
	if language := response.Header.Get(fiber.HeaderContentLanguage); language != "en" {
		t.Fatalf("expected Content-Language en, got %q", language)
	}
	payload := decodeJSON[suggestionsResponse](t, response)

	expectedKeys := []string{
		predictor.KeyStrongCramps,
		predictor.KeyFatigue,
		predictor.KeyPredictedCramps,
		predictor.KeyPredictedFatigue,
		predictor.KeyHydration,
		predictor.KeyNutrition,
	}
	if len(payload.Suggestions) != len(expectedKeys) {
		t.Fatalf("expected %d suggestions, got %#v", len(expectedKeys), payload.Suggestions)
	}
	for index, key := range expectedKeys {
		if payload.Suggestions[index].Key != key {
			t.Fatalf("suggestion %d: expected key %q, got %q", index, key, payload.Suggestions[index].Key)
		}
	}
	if payload.Suggestions[2].Priority != predictor.PriorityHigh {
		t.Fatalf("expected high priority for predicted cramps, got %q", payload.Suggestions[2].Priority)
	}

	expectedTags := []string{
		predictor.TagStrongCramps,
		predictor.TagFatigue,
		predictor.TagPredictedCramps,
		predictor.TagPredictedFatigue,
	}
	if len(payload.BasedOnSymptoms) != len(expectedTags) {
		t.Fatalf("expected tags %v, got %v", expectedTags, payload.BasedOnSymptoms)
	}
	for index, tag := range expectedTags {
		if payload.BasedOnSymptoms[index] != tag {
			t.Fatalf("tag %d: expected %q, got %q", index, tag, payload.BasedOnSymptoms[index])
		}
	}
	if len(payload.Prediction.PredictedSymptoms) != 2 {
		t.Fatalf("expected embedded prediction, got %#v", payload.Prediction)
	}
}

func TestSuggestionsAreLocalized(t *testing.T) {
	ta := newTestApp(t)
	user := createTestUser(t, ta.database, "ru@example.com", "StrongPass1", false)
	token := authTokenForUser(t, user)

	byQuery := ta.do(t, http.MethodGet, "/api/symptoms/suggestions?lang=ru", token, nil)
	expectStatus(t, byQuery, http.StatusOK)
	if language := byQuery.Header.Get(fiber.HeaderContentLanguage); language != "ru" {
		t.Fatalf("expected Content-Language ru, got %q", language)
	}
	payload := decodeJSON[suggestionsResponse](t, byQuery)
	expectedTitle, ok := ta.handler.i18n.Lookup("ru", "suggestion.hydration.title")
	if !ok {
		t.Fatal("expected ru hydration title in catalog")
	}
	if payload.Suggestions[0].Title != expectedTitle {
		t.Fatalf("expected localized title %q, got %q", expectedTitle, payload.Suggestions[0].Title)
	}

	request := ta.do(t, http.MethodGet, "/api/symptoms/suggestions?lang=de", token, nil)
	expectStatus(t, request, http.StatusOK)
	fallback := decodeJSON[suggestionsResponse](t, request)
	if fallback.Suggestions[0].Title != "Stay hydrated" {
		t.Fatalf("expected english fallback title, got %q", fallback.Suggestions[0].Title)
	}
}
