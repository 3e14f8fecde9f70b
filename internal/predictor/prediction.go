package predictor

import (
	"sort"
	"time"

	"github.com/terraincognita07/florette/internal/models"
)

type SymptomName string

const (
	SymptomCramps   SymptomName = "cramps"
	SymptomHeadache SymptomName = "headache"
	SymptomFatigue  SymptomName = "fatigue"
	SymptomNausea   SymptomName = "nausea"
)

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

const (
	weekWindowDays  = 7
	monthWindowDays = 30

	weekWeight  = 0.7
	monthWeight = 0.3

	crampsBias = 1.1

	inclusionThreshold = 0.3

	highConfidenceCount   = 5
	mediumConfidenceCount = 2

	// Reported when nothing crosses the inclusion threshold.
	defaultConfidenceScore = 0.8
)

// trackedSymptoms lists the predicted categories in tie-break order.
var trackedSymptoms = []SymptomName{
	SymptomCramps,
	SymptomHeadache,
	SymptomFatigue,
	SymptomNausea,
}

type PredictedSymptom struct {
	Symptom     SymptomName     `json:"symptom"`
	Probability float64         `json:"probability"`
	Confidence  ConfidenceLevel `json:"confidence"`
}

type Prediction struct {
	PredictedSymptoms []PredictedSymptom `json:"predicted_symptoms"`
	ConfidenceScore   float64            `json:"confidence_score"`
}

// PredictTomorrowSymptoms scores each tracked symptom over the 7 and 30 day
// windows ending at now. targetDate does not shift the windows.
func PredictTomorrowSymptoms(records []models.SymptomRecord, targetDate time.Time, now time.Time) Prediction {
	if len(records) == 0 {
		return Prediction{PredictedSymptoms: []PredictedSymptom{}, ConfidenceScore: 0}
	}

	week := recordsSince(records, now.AddDate(0, 0, -weekWindowDays))
	month := recordsSince(records, now.AddDate(0, 0, -monthWindowDays))

	predicted := make([]PredictedSymptom, 0, len(trackedSymptoms))
	for _, symptom := range trackedSymptoms {
		probability, confidence := symptomProbability(symptom, week, month)
		if probability <= inclusionThreshold {
			continue
		}
		predicted = append(predicted, PredictedSymptom{
			Symptom:     symptom,
			Probability: probability,
			Confidence:  confidence,
		})
	}

	sort.SliceStable(predicted, func(i, j int) bool {
		return predicted[i].Probability > predicted[j].Probability
	})

	return Prediction{
		PredictedSymptoms: predicted,
		ConfidenceScore:   overallConfidence(predicted),
	}
}

func recordsSince(records []models.SymptomRecord, threshold time.Time) []models.SymptomRecord {
	filtered := make([]models.SymptomRecord, 0, len(records))
	for _, record := range records {
		if !record.Date.Before(threshold) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func symptomProbability(symptom SymptomName, week []models.SymptomRecord, month []models.SymptomRecord) (float64, ConfidenceLevel) {
	weekOccurrences := countOccurrences(symptom, week)
	monthOccurrences := countOccurrences(symptom, month)

	probability := ratio(weekOccurrences, len(week))*weekWeight + ratio(monthOccurrences, len(month))*monthWeight
	if symptom == SymptomCramps {
		probability *= crampsBias
	}

	return clamp01(probability), confidenceForCount(weekOccurrences + monthOccurrences)
}

// Occurred reports whether record shows symptom; absent fields never count.
func Occurred(symptom SymptomName, record models.SymptomRecord) bool {
	switch symptom {
	case SymptomCramps:
		return record.HasCramps()
	case SymptomHeadache:
		return record.HasHeadache()
	case SymptomFatigue:
		return record.HasFatigue()
	case SymptomNausea:
		return record.HasNausea()
	default:
		return false
	}
}

func countOccurrences(symptom SymptomName, records []models.SymptomRecord) int {
	count := 0
	for _, record := range records {
		if Occurred(symptom, record) {
			count++
		}
	}
	return count
}

func confidenceForCount(totalCount int) ConfidenceLevel {
	switch {
	case totalCount >= highConfidenceCount:
		return ConfidenceHigh
	case totalCount >= mediumConfidenceCount:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func confidenceWeight(level ConfidenceLevel) float64 {
	switch level {
	case ConfidenceHigh:
		return 1.0
	case ConfidenceMedium:
		return 0.7
	default:
		return 0.4
	}
}

func overallConfidence(predicted []PredictedSymptom) float64 {
	if len(predicted) == 0 {
		return defaultConfidenceScore
	}
	total := 0.0
	for _, symptom := range predicted {
		total += confidenceWeight(symptom.Confidence)
	}
	return clamp01(total / float64(len(predicted)))
}

func ratio(count int, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
