package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodSad       Mood = "sad"
	MoodIrritated Mood = "irritated"
	MoodAnxious   Mood = "anxious"
	MoodCalm      Mood = "calm"
	MoodExcited   Mood = "excited"
	MoodDepressed Mood = "depressed"
)

type CrampLevel string

const (
	CrampsNone     CrampLevel = "none"
	CrampsMild     CrampLevel = "mild"
	CrampsModerate CrampLevel = "moderate"
	CrampsStrong   CrampLevel = "strong"
)

type FlowLevel string

const (
	FlowNone   FlowLevel = "none"
	FlowLight  FlowLevel = "light"
	FlowMedium FlowLevel = "medium"
	FlowHeavy  FlowLevel = "heavy"
)

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// SymptomRecord is one user's log for a single calendar day. Nil pointers and
// empty strings mean the field was not logged.
type SymptomRecord struct {
	ID           uint          `gorm:"primaryKey"`
	UserID       uint          `gorm:"not null;uniqueIndex:uidx_symptom_records_user_date"`
	Date         time.Time     `gorm:"type:date;not null;uniqueIndex:uidx_symptom_records_user_date"`
	Mood         *Mood         `gorm:"type:text"`
	Cramps       *CrampLevel   `gorm:"type:text"`
	Headache     *bool
	Nausea       *bool
	Fatigue      *bool
	FlowLevel    *FlowLevel    `gorm:"type:text"`
	SleepQuality *SleepQuality `gorm:"type:text"`
	FoodCravings string        `gorm:"not null;default:''"`
	Notes        string        `gorm:"not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type symptomRecordJSON struct {
	ID           uint          `json:"id,omitempty"`
	Date         string        `json:"date"`
	Mood         *Mood         `json:"mood,omitempty"`
	Cramps       *CrampLevel   `json:"cramps,omitempty"`
	Headache     *bool         `json:"headache,omitempty"`
	Nausea       *bool         `json:"nausea,omitempty"`
	Fatigue      *bool         `json:"fatigue,omitempty"`
	FlowLevel    *FlowLevel    `json:"flow_level,omitempty"`
	SleepQuality *SleepQuality `json:"sleep_quality,omitempty"`
	FoodCravings string        `json:"food_cravings,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CreatedAt    *time.Time    `json:"created_at,omitempty"`
	UpdatedAt    *time.Time    `json:"updated_at,omitempty"`
}

func (record SymptomRecord) MarshalJSON() ([]byte, error) {
	payload := symptomRecordJSON{
		ID:           record.ID,
		Mood:         record.Mood,
		Cramps:       record.Cramps,
		Headache:     record.Headache,
		Nausea:       record.Nausea,
		Fatigue:      record.Fatigue,
		FlowLevel:    record.FlowLevel,
		SleepQuality: record.SleepQuality,
		FoodCravings: record.FoodCravings,
		Notes:        record.Notes,
	}
	if !record.Date.IsZero() {
		payload.Date = record.Date.Format(DateLayout)
	}
	if !record.CreatedAt.IsZero() {
		createdAt := record.CreatedAt
		payload.CreatedAt = &createdAt
	}
	if !record.UpdatedAt.IsZero() {
		updatedAt := record.UpdatedAt
		payload.UpdatedAt = &updatedAt
	}
	return json.Marshal(payload)
}

func (record *SymptomRecord) UnmarshalJSON(data []byte) error {
	payload := symptomRecordJSON{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	var date time.Time
	if payload.Date != "" {
		parsed, err := time.Parse(DateLayout, payload.Date)
		if err != nil {
			return fmt.Errorf("parse symptom record date %q: %w", payload.Date, err)
		}
		date = parsed
	}

	*record = SymptomRecord{
		ID:           payload.ID,
		Date:         date,
		Mood:         payload.Mood,
		Cramps:       payload.Cramps,
		Headache:     payload.Headache,
		Nausea:       payload.Nausea,
		Fatigue:      payload.Fatigue,
		FlowLevel:    payload.FlowLevel,
		SleepQuality: payload.SleepQuality,
		FoodCravings: payload.FoodCravings,
		Notes:        payload.Notes,
	}
	if payload.CreatedAt != nil {
		record.CreatedAt = *payload.CreatedAt
	}
	if payload.UpdatedAt != nil {
		record.UpdatedAt = *payload.UpdatedAt
	}
	return nil
}

// HasCramps reports cramps of any level above none.
func (record SymptomRecord) HasCramps() bool {
	return record.Cramps != nil && *record.Cramps != CrampsNone
}

func (record SymptomRecord) HasHeadache() bool {
	return record.Headache != nil && *record.Headache
}

func (record SymptomRecord) HasNausea() bool {
	return record.Nausea != nil && *record.Nausea
}

func (record SymptomRecord) HasFatigue() bool {
	return record.Fatigue != nil && *record.Fatigue
}

func (record SymptomRecord) CrampLevelIs(level CrampLevel) bool {
	return record.Cramps != nil && *record.Cramps == level
}
