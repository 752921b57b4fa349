package model

import "time"

// FormID uniquely identifies a form session across the system
type FormID string

// Field names a single form field
type Field string

const (
	FieldStudentNumber Field = "student_number"
	FieldLastName      Field = "last_name"
	FieldFirstName     Field = "first_name"
	FieldProgram       Field = "program"
	FieldYearLevel     Field = "year_level"
)

// BaseFields are the fields required regardless of program choice.
// Year level becomes required only once a program has been chosen.
var BaseFields = []Field{FieldStudentNumber, FieldLastName, FieldFirstName, FieldProgram}

// Phase represents the current stage of the submission lifecycle
type Phase string

const (
	PhaseEditing        Phase = "editing"         // Accepting field edits
	PhaseSubmitting     Phase = "submitting"      // Submission in flight (transient)
	PhasePersisted      Phase = "persisted"       // Record written, image not yet requested
	PhaseEncoding       Phase = "encoding"        // Encode request in flight
	PhaseReady          Phase = "ready"           // Image available for display/download
	PhaseEncodingFailed Phase = "encoding_failed" // Encode failed, retry allowed
)

// Form is the full serializable state of one registration form session.
// Field values are stored raw as entered; validation errors live alongside
// them so any presentation client can render both without extra calls.
type Form struct {
	ID FormID

	StudentNumber string
	LastName      string
	FirstName     string
	Program       string
	YearLevel     string

	// FieldErrors maps a field to its current validation message.
	// Absent or empty means the field has no error.
	FieldErrors map[Field]string

	Phase Phase

	// Record is the identity record built at submission, nil while editing.
	// It stays attached so the image can be re-rendered without rebuilding.
	Record *IdentityRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewForm creates an empty form session in the editing phase
func NewForm(id FormID, now time.Time) *Form {
	return &Form{
		ID:          id,
		FieldErrors: make(map[Field]string),
		Phase:       PhaseEditing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Value returns the raw value currently held for the given field
func (f *Form) Value(field Field) string {
	switch field {
	case FieldStudentNumber:
		return f.StudentNumber
	case FieldLastName:
		return f.LastName
	case FieldFirstName:
		return f.FirstName
	case FieldProgram:
		return f.Program
	case FieldYearLevel:
		return f.YearLevel
	default:
		return ""
	}
}

// SetValue stores a raw value for the given field. Unknown fields are
// reported so typos in API payloads surface instead of vanishing.
func (f *Form) SetValue(field Field, value string) error {
	switch field {
	case FieldStudentNumber:
		f.StudentNumber = value
	case FieldLastName:
		f.LastName = value
	case FieldFirstName:
		f.FirstName = value
	case FieldProgram:
		f.Program = value
	case FieldYearLevel:
		f.YearLevel = value
	default:
		return ErrUnknownField
	}
	return nil
}

// RequiredFields returns the fields counted towards completion in the
// form's current state: the four base fields, plus year level once a
// program has been chosen.
func (f *Form) RequiredFields() []Field {
	if f.Program == "" {
		return BaseFields
	}
	return append(append([]Field{}, BaseFields...), FieldYearLevel)
}

// HasErrors reports whether any field currently carries a validation error
func (f *Form) HasErrors() bool {
	for _, msg := range f.FieldErrors {
		if msg != "" {
			return true
		}
	}
	return false
}
