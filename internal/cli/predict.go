package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/predictor"
	"github.com/terraincognita07/florette/internal/services"
)

var ErrHistoryPathRequired = errors.New("history file is required")

type PredictOptions struct {
	HistoryPath string
	// TargetDate is YYYY-MM-DD; empty means the day after Now.
	TargetDate string
	// Now is an RFC 3339 timestamp or a YYYY-MM-DD day. A bare day keeps the
	// clock's time of day so the history windows match the API's.
	Now string
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type predictOutput struct {
	TargetDate      string                 `json:"target_date"`
	Now             string                 `json:"now"`
	Records         int                    `json:"records"`
	Prediction      predictor.Prediction   `json:"prediction"`
	Suggestions     []predictor.Suggestion `json:"suggestions"`
	BasedOnSymptoms []string               `json:"based_on_symptoms"`
}

// RunPredictCommand scores a JSON history file offline and prints the
// prediction together with suggestions for the record logged on now's day.
func RunPredictCommand(options PredictOptions, out io.Writer) error {
	if strings.TrimSpace(options.HistoryPath) == "" {
		return ErrHistoryPathRequired
	}
	// History files carry bare dates, so the whole run stays in UTC.
	location := time.UTC

	records, err := loadHistoryFile(options.HistoryPath)
	if err != nil {
		return err
	}

	clock := options.Clock
	if clock == nil {
		clock = time.Now
	}
	now, err := resolvePredictNow(options.Now, clock().In(location), location)
	if err != nil {
		return err
	}

	targetDate := services.DateAtLocation(now, location).AddDate(0, 0, 1)
	if strings.TrimSpace(options.TargetDate) != "" {
		parsed, err := services.ParseDay(options.TargetDate, location)
		if err != nil {
			return fmt.Errorf("invalid --target-date %q (expected YYYY-MM-DD)", options.TargetDate)
		}
		targetDate = parsed
	}

	prediction := predictor.PredictTomorrowSymptoms(records, targetDate, now)
	current := latestRecordOnDay(records, now, location)

	suggestions := predictor.GenerateSuggestions(current, prediction.PredictedSymptoms)

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(predictOutput{
		TargetDate:      targetDate.Format(models.DateLayout),
		Now:             now.Format(models.DateLayout),
		Records:         len(records),
		Prediction:      prediction,
		Suggestions:     suggestions.Suggestions,
		BasedOnSymptoms: suggestions.BasedOnSymptoms,
	})
}

func resolvePredictNow(raw string, wallClock time.Time, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return wallClock, nil
	}
	if timestamp, err := time.Parse(time.RFC3339, raw); err == nil {
		return timestamp.In(location), nil
	}

	day, err := services.ParseDay(raw, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q (expected YYYY-MM-DD or RFC 3339)", raw)
	}
	sinceMidnight := wallClock.Sub(services.DateAtLocation(wallClock, location))
	return day.Add(sinceMidnight), nil
}

func loadHistoryFile(path string) ([]models.SymptomRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	records := []models.SymptomRecord{}
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}
	return records, nil
}

// latestRecordOnDay returns the last record in file order that falls on
// day, or nil.
func latestRecordOnDay(records []models.SymptomRecord, day time.Time, location *time.Location) *models.SymptomRecord {
	dayStart, dayEnd := services.DayRange(day, location)
	var latest *models.SymptomRecord
	for index := range records {
		date := services.DateAtLocation(records[index].Date, location)
		if date.Before(dayStart) || !date.Before(dayEnd) {
			continue
		}
		latest = &records[index]
	}
	return latest
}
