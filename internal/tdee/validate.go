package tdee

import (
	"regexp"
	"strconv"
	"strings"

	"lg/calorie-banking-go-api/internal/weekplan"
)

var wholeNumber = regexp.MustCompile(`^\d+$`)

// FieldError is a user-facing validation message for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field that failed, in input order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Messages returns the errors keyed by field name.
func (e *ValidationError) Messages() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil returns e only when something failed, so callers can return it as error.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// ParseMacros validates gram values typed by a user who already knows their
// macros. Each must be a positive whole number.
func ParseMacros(protein, carbs, fats string) (weekplan.Macros, error) {
	var verr ValidationError
	p := parsePositive(&verr, "protein", protein)
	c := parsePositive(&verr, "carbs", carbs)
	f := parsePositive(&verr, "fats", fats)
	if err := verr.orNil(); err != nil {
		return weekplan.Macros{}, err
	}
	return weekplan.Macros{ProteinG: p, CarbsG: c, FatG: f}, nil
}

func parsePositive(verr *ValidationError, field, value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		verr.add(field, "This field is required")
		return 0
	}
	if !wholeNumber.MatchString(value) {
		verr.add(field, "Only positive whole numbers are allowed")
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		verr.add(field, "Value is too large")
		return 0
	}
	if n <= 0 {
		verr.add(field, "Value must be greater than 0")
		return 0
	}
	return n
}

// ParseWhole parses a whole-number profile field (age, height, weight).
// Range checks are left to Profile.Validate.
func ParseWhole(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Fields: []FieldError{{field, "This field is required"}}}
	}
	if !wholeNumber.MatchString(value) {
		return 0, &ValidationError{Fields: []FieldError{{field, "Only whole numbers are allowed"}}}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{field, "Value is too large"}}}
	}
	return n, nil
}
