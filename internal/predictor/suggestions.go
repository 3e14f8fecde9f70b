package predictor

import "github.com/terraincognita07/florette/internal/models"

type SuggestionCategory string

const (
	CategoryRemedy      SuggestionCategory = "remedy"
	CategoryLifestyle   SuggestionCategory = "lifestyle"
	CategoryMedical     SuggestionCategory = "medical"
	CategoryPreparation SuggestionCategory = "preparation"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	predictedCrampsThreshold  = 0.5
	predictedFatigueThreshold = 0.6
)

const (
	TagStrongCramps     = "strong cramps"
	TagModerateCramps   = "moderate cramps"
	TagHeadache         = "headache"
	TagFatigue          = "fatigue"
	TagPredictedCramps  = "predicted cramps"
	TagPredictedFatigue = "predicted fatigue"
)

// Suggestion keys identify catalog entries; localized copies share the key.
const (
	KeyStrongCramps     = "strong_cramps"
	KeyModerateCramps   = "moderate_cramps"
	KeyHeadache         = "headache"
	KeyFatigue          = "fatigue"
	KeyPredictedCramps  = "predicted_cramps"
	KeyPredictedFatigue = "predicted_fatigue"
	KeyHydration        = "hydration"
	KeyNutrition        = "nutrition"
)

type Suggestion struct {
	Key         string             `json:"key"`
	Category    SuggestionCategory `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    Priority           `json:"priority"`
}

type SuggestionSet struct {
	Suggestions     []Suggestion `json:"suggestions"`
	BasedOnSymptoms []string     `json:"based_on_symptoms"`
}

type suggestionText struct {
	Title       string
	Description string
}

var defaultSuggestionText = map[string]suggestionText{
	KeyStrongCramps: {
		Title:       "Ease strong cramps",
		Description: "Apply a heating pad to your lower abdomen and consider an over-the-counter pain reliever. Contact a doctor if the pain is unusual for you.",
	},
	KeyModerateCramps: {
		Title:       "Soothe moderate cramps",
		Description: "Try a warm bath, gentle stretching, or a heating pad to relax the muscles.",
	},
	KeyHeadache: {
		Title:       "Relieve your headache",
		Description: "Rest in a quiet, dim room, drink a glass of water, and limit screen time.",
	},
	KeyFatigue: {
		Title:       "Recharge your energy",
		Description: "Take a short walk outside, keep naps under 30 minutes, and aim for an early bedtime.",
	},
	KeyPredictedCramps: {
		Title:       "Get ready for cramps tomorrow",
		Description: "Keep a heating pad and pain relief at hand, and plan a lighter schedule if you can.",
	},
	KeyPredictedFatigue: {
		Title:       "Plan for low energy tomorrow",
		Description: "Go to bed earlier tonight and schedule demanding tasks for the morning.",
	},
	KeyHydration: {
		Title:       "Stay hydrated",
		Description: "Drink water regularly through the day; it helps with bloating and headaches.",
	},
	KeyNutrition: {
		Title:       "Eat balanced meals",
		Description: "Include iron-rich foods, leafy greens, and whole grains to support your cycle.",
	},
}

// GenerateSuggestions turns today's record and tomorrow's prediction into
// deduplicated advice. current may be nil.
func GenerateSuggestions(current *models.SymptomRecord, predicted []PredictedSymptom) SuggestionSet {
	builder := newSuggestionBuilder()

	if current != nil {
		switch {
		case current.CrampLevelIs(models.CrampsStrong):
			builder.add(KeyStrongCramps, CategoryRemedy, PriorityHigh, TagStrongCramps)
		case current.CrampLevelIs(models.CrampsModerate):
			builder.add(KeyModerateCramps, CategoryRemedy, PriorityMedium, TagModerateCramps)
		}
		if current.HasHeadache() {
			builder.add(KeyHeadache, CategoryRemedy, PriorityMedium, TagHeadache)
		}
		if current.HasFatigue() {
			builder.add(KeyFatigue, CategoryLifestyle, PriorityMedium, TagFatigue)
		}
	}

	for _, symptom := range predicted {
		switch {
		case symptom.Symptom == SymptomCramps && symptom.Probability > predictedCrampsThreshold:
			builder.add(KeyPredictedCramps, CategoryPreparation, priorityForConfidence(symptom.Confidence), TagPredictedCramps)
		case symptom.Symptom == SymptomFatigue && symptom.Probability > predictedFatigueThreshold:
			builder.add(KeyPredictedFatigue, CategoryLifestyle, priorityForConfidence(symptom.Confidence), TagPredictedFatigue)
		}
	}

	builder.add(KeyHydration, CategoryLifestyle, PriorityLow, "")
	builder.add(KeyNutrition, CategoryLifestyle, PriorityLow, "")

	return builder.result()
}

func priorityForConfidence(level ConfidenceLevel) Priority {
	switch level {
	case ConfidenceHigh:
		return PriorityHigh
	case ConfidenceMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

type suggestionIdentity struct {
	title       string
	description string
}

type suggestionBuilder struct {
	suggestions []Suggestion
	tags        []string
	seen        map[suggestionIdentity]struct{}
	seenTags    map[string]struct{}
}

func newSuggestionBuilder() *suggestionBuilder {
	return &suggestionBuilder{
		suggestions: make([]Suggestion, 0, 7),
		tags:        make([]string, 0, 5),
		seen:        make(map[suggestionIdentity]struct{}),
		seenTags:    make(map[string]struct{}),
	}
}

func (builder *suggestionBuilder) add(key string, category SuggestionCategory, priority Priority, tag string) {
	text := defaultSuggestionText[key]
	identity := suggestionIdentity{title: text.Title, description: text.Description}
	if _, exists := builder.seen[identity]; !exists {
		builder.seen[identity] = struct{}{}
		builder.suggestions = append(builder.suggestions, Suggestion{
			Key:         key,
			Category:    category,
			Title:       text.Title,
			Description: text.Description,
			Priority:    priority,
		})
	}

	if tag == "" {
		return
	}
	if _, exists := builder.seenTags[tag]; exists {
		return
	}
	builder.seenTags[tag] = struct{}{}
	builder.tags = append(builder.tags, tag)
}

func (builder *suggestionBuilder) result() SuggestionSet {
	return SuggestionSet{
		Suggestions:     builder.suggestions,
		BasedOnSymptoms: builder.tags,
	}
}
