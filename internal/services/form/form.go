// Package form holds the pure validation and state-transition rules for
// registration form sessions. Everything here operates on model.Form
// values and has no storage or transport dependencies, so the rules can
// be exercised directly in tests and reused by any boundary layer.
package form

import (
	"regexp"

	"github.com/jpmiranda/regform/internal/model"
)

// Validation messages surfaced inline next to a field
const (
	MsgStudentNumberFormat = "Student number must follow the format YYYY-NNNNN-TG-N (e.g., 2023-00011-TG-0)"
	MsgLettersOnly         = "Only letters and spaces are allowed"
)

var (
	// studentNumberPattern is the canonical student number rule: 4-digit
	// year, 5-digit sequence, literal TG campus segment, check digit.
	studentNumberPattern = regexp.MustCompile(`^\d{4}-\d{5}-TG-\d$`)

	// namePattern admits letters and whitespace only
	namePattern = regexp.MustCompile(`^[A-Za-z\s]*$`)
)

// Validate returns the inline error message for a single field value, or
// "" when the value is acceptable. Emptiness is not an error here:
// required-ness is enforced at submit time, not per keystroke.
func Validate(field model.Field, value string) string {
	switch field {
	case model.FieldStudentNumber:
		if value != "" && !studentNumberPattern.MatchString(value) {
			return MsgStudentNumberFormat
		}
	case model.FieldFirstName, model.FieldLastName:
		if !namePattern.MatchString(value) {
			return MsgLettersOnly
		}
	case model.FieldProgram, model.FieldYearLevel:
		// Membership in the offered sets is checked at submission
	}
	return ""
}

// ApplyField stores a raw field value on the form, recomputes that
// field's error, and applies the dependent-field rule: choosing a
// different program always clears the year level, since the previous
// choice may not exist under the new program's list. Errors for other
// fields are left untouched.
func ApplyField(f *model.Form, field model.Field, value string) error {
	previous := f.Value(field)
	if err := f.SetValue(field, value); err != nil {
		return err
	}

	if msg := Validate(field, value); msg != "" {
		f.FieldErrors[field] = msg
	} else {
		delete(f.FieldErrors, field)
	}

	if field == model.FieldProgram && value != previous {
		f.YearLevel = ""
		delete(f.FieldErrors, model.FieldYearLevel)
	}

	return nil
}

// Progress returns completion as a whole percentage in [0, 100]. Year
// level joins the denominator only once a program has been chosen, so an
// untouched form is 0% and a form with all base fields filled but no
// program sits on a 4-field denominator.
func Progress(f *model.Form) int {
	required := f.RequiredFields()
	filled := 0
	for _, field := range required {
		if f.Value(field) != "" {
			filled++
		}
	}
	return filled * 100 / len(required)
}

// Complete reports whether the form is submittable: every field filled,
// year level included, and no field carrying a validation error.
func Complete(f *model.Form) bool {
	for _, field := range []model.Field{
		model.FieldStudentNumber,
		model.FieldLastName,
		model.FieldFirstName,
		model.FieldProgram,
		model.FieldYearLevel,
	} {
		if f.Value(field) == "" {
			return false
		}
	}
	return !f.HasErrors()
}

// ValidateSubmission runs the full submit-time check: presence of all
// five fields, the per-field rules, and membership of program and year
// level in their offered sets.
func ValidateSubmission(f *model.Form) error {
	if !Complete(f) {
		if f.HasErrors() {
			return model.ErrValidationFailed
		}
		return model.ErrIncompleteSubmission
	}
	if model.YearLevelsFor(f.Program) == nil {
		return model.ErrInvalidProgram
	}
	if !model.ValidYearLevel(f.Program, f.YearLevel) {
		return model.ErrInvalidYearLevel
	}
	return nil
}
