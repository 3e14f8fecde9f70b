package services

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/terraincognita07/florette/internal/models"
)

const (
	MaxSymptomNotesLength        = 2000
	MaxSymptomFoodCravingsLength = 200
)

var ErrInvalidSymptomInput = errors.New("invalid symptom input")

// SymptomInput is the editable part of a SymptomRecord. Every field is
// optional; nil and blank values are stored as not logged.
type SymptomInput struct {
	Mood         *models.Mood         `json:"mood" validate:"omitempty,oneof=happy sad irritated anxious calm excited depressed"`
	Cramps       *models.CrampLevel   `json:"cramps" validate:"omitempty,oneof=none mild moderate strong"`
	Headache     *bool                `json:"headache"`
	Nausea       *bool                `json:"nausea"`
	Fatigue      *bool                `json:"fatigue"`
	FlowLevel    *models.FlowLevel    `json:"flow_level" validate:"omitempty,oneof=none light medium heavy"`
	SleepQuality *models.SleepQuality `json:"sleep_quality" validate:"omitempty,oneof=poor fair good excellent"`
	FoodCravings string               `json:"food_cravings" validate:"max=200"`
	Notes        string               `json:"notes" validate:"max=2000"`
}

// SymptomInputError lists the JSON names of the rejected fields.
type SymptomInputError struct {
	Fields []string
}

func (err *SymptomInputError) Error() string {
	return ErrInvalidSymptomInput.Error() + ": " + strings.Join(err.Fields, ", ")
}

func (err *SymptomInputError) Unwrap() error {
	return ErrInvalidSymptomInput
}

var symptomValidator = newSymptomValidator()

func newSymptomValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return validate
}

// NormalizeSymptomInput trims free text and validates enum values and text
// lengths. Blank enum strings are treated as not logged.
func NormalizeSymptomInput(input SymptomInput) (SymptomInput, error) {
	input.FoodCravings = strings.TrimSpace(input.FoodCravings)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Mood = blankToNil(input.Mood)
	input.Cramps = blankToNil(input.Cramps)
	input.FlowLevel = blankToNil(input.FlowLevel)
	input.SleepQuality = blankToNil(input.SleepQuality)

	if err := symptomValidator.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return input, err
		}
		fields := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields = append(fields, fieldError.Field())
		}
		sort.Strings(fields)
		return input, &SymptomInputError{Fields: fields}
	}
	return input, nil
}

// ApplyTo overwrites every editable field of record.
func (input SymptomInput) ApplyTo(record *models.SymptomRecord) {
	record.Mood = input.Mood
	record.Cramps = input.Cramps
	record.Headache = input.Headache
	record.Nausea = input.Nausea
	record.Fatigue = input.Fatigue
	record.FlowLevel = input.FlowLevel
	record.SleepQuality = input.SleepQuality
	record.FoodCravings = input.FoodCravings
	record.Notes = input.Notes
}

func blankToNil[T ~string](value *T) *T {
	if value == nil || strings.TrimSpace(string(*value)) == "" {
		return nil
	}
	trimmed := T(strings.TrimSpace(string(*value)))
	return &trimmed
}
