package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jpmiranda/regform/internal/model"
)

type FormSuite struct {
	suite.Suite
	form *model.Form
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormSuite))
}

func (s *FormSuite) SetupTest() {
	s.form = model.NewForm("form-1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// set is a helper that applies a field value and asserts it was accepted
func (s *FormSuite) set(field model.Field, value string) {
	s.Require().NoError(ApplyField(s.form, field, value))
}

// fill populates a complete, valid form
func (s *FormSuite) fill() {
	s.set(model.FieldStudentNumber, "2023-00011-TG-0")
	s.set(model.FieldLastName, "Cruz")
	s.set(model.FieldFirstName, "Ana")
	s.set(model.FieldProgram, model.ProgramDIT)
	s.set(model.FieldYearLevel, "2nd Year")
}

// Validate tests

func (s *FormSuite) TestValidateStudentNumberAcceptsCanonicalFormat() {
	s.Empty(Validate(model.FieldStudentNumber, "2023-00011-TG-0"))
}

func (s *FormSuite) TestValidateStudentNumberRejectsMalformedValues() {
	for _, value := range []string{
		"abc",
		"2023-00011-TG",
		"2023-00011-TG-10",
		"23-00011-TG-0",
		"2023-00011-tg-0",
		"2023-0001-TG-0",
		" 2023-00011-TG-0",
	} {
		s.Equal(MsgStudentNumberFormat, Validate(model.FieldStudentNumber, value), value)
	}
}

func (s *FormSuite) TestValidateStudentNumberAllowsEmpty() {
	s.Empty(Validate(model.FieldStudentNumber, ""))
}

func (s *FormSuite) TestValidateNamesAcceptLettersAndSpaces() {
	s.Empty(Validate(model.FieldFirstName, "Ana"))
	s.Empty(Validate(model.FieldLastName, "Dela Cruz"))
	s.Empty(Validate(model.FieldFirstName, ""))
}

func (s *FormSuite) TestValidateNamesRejectDigitsAndPunctuation() {
	s.Equal(MsgLettersOnly, Validate(model.FieldFirstName, "Ana3"))
	s.Equal(MsgLettersOnly, Validate(model.FieldLastName, "O'Brien"))
	s.Equal(MsgLettersOnly, Validate(model.FieldLastName, "Cruz-Reyes"))
}

// ApplyField tests

func (s *FormSuite) TestApplyFieldStoresValue() {
	s.set(model.FieldFirstName, "Ana")
	s.Equal("Ana", s.form.FirstName)
	s.Empty(s.form.FieldErrors)
}

func (s *FormSuite) TestApplyFieldRecordsValidationError() {
	s.set(model.FieldStudentNumber, "abc")
	s.Equal("abc", s.form.StudentNumber)
	s.Equal(MsgStudentNumberFormat, s.form.FieldErrors[model.FieldStudentNumber])
}

func (s *FormSuite) TestApplyFieldClearsErrorWhenCorrected() {
	s.set(model.FieldStudentNumber, "abc")
	s.set(model.FieldStudentNumber, "2023-00011-TG-0")
	s.NotContains(s.form.FieldErrors, model.FieldStudentNumber)
}

func (s *FormSuite) TestApplyFieldLeavesOtherErrorsUntouched() {
	s.set(model.FieldStudentNumber, "abc")
	s.set(model.FieldFirstName, "Ana")
	s.Equal(MsgStudentNumberFormat, s.form.FieldErrors[model.FieldStudentNumber])
}

func (s *FormSuite) TestApplyFieldRejectsUnknownField() {
	err := ApplyField(s.form, model.Field("middle_name"), "x")
	s.ErrorIs(err, model.ErrUnknownField)
}

func (s *FormSuite) TestChangingProgramClearsYearLevel() {
	s.set(model.FieldProgram, model.ProgramBSIT)
	s.set(model.FieldYearLevel, "4th Year")

	s.set(model.FieldProgram, model.ProgramDIT)
	s.Empty(s.form.YearLevel)
}

func (s *FormSuite) TestReapplyingSameProgramKeepsYearLevel() {
	s.set(model.FieldProgram, model.ProgramDIT)
	s.set(model.FieldYearLevel, "2nd Year")

	s.set(model.FieldProgram, model.ProgramDIT)
	s.Equal("2nd Year", s.form.YearLevel)
}

// Progress tests

func (s *FormSuite) TestProgressEmptyFormIsZero() {
	s.Equal(0, Progress(s.form))
}

func (s *FormSuite) TestProgressUsesFourFieldsBeforeProgramChosen() {
	s.set(model.FieldStudentNumber, "2023-00011-TG-0")
	s.Equal(25, Progress(s.form))

	s.set(model.FieldLastName, "Cruz")
	s.set(model.FieldFirstName, "Ana")
	s.Equal(75, Progress(s.form))
}

func (s *FormSuite) TestProgressExpandsToFiveFieldsOnceProgramChosen() {
	s.set(model.FieldStudentNumber, "2023-00011-TG-0")
	s.set(model.FieldLastName, "Cruz")
	s.set(model.FieldFirstName, "Ana")
	s.set(model.FieldProgram, model.ProgramDIT)
	s.Equal(80, Progress(s.form))

	s.set(model.FieldYearLevel, "2nd Year")
	s.Equal(100, Progress(s.form))
}

func (s *FormSuite) TestProgressCountsInvalidValuesAsFilled() {
	// Progress tracks presence only; correctness is surfaced separately
	s.set(model.FieldStudentNumber, "abc")
	s.Equal(25, Progress(s.form))
}

// Complete and ValidateSubmission tests

func (s *FormSuite) TestCompleteFullValidForm() {
	s.fill()
	s.True(Complete(s.form))
	s.NoError(ValidateSubmission(s.form))
}

func (s *FormSuite) TestValidateSubmissionRejectsMissingYearLevel() {
	s.set(model.FieldStudentNumber, "2023-00011-TG-0")
	s.set(model.FieldLastName, "Cruz")
	s.set(model.FieldFirstName, "Ana")
	s.set(model.FieldProgram, model.ProgramDIT)

	s.False(Complete(s.form))
	s.ErrorIs(ValidateSubmission(s.form), model.ErrIncompleteSubmission)
}

func (s *FormSuite) TestValidateSubmissionRejectsFieldErrors() {
	s.fill()
	s.set(model.FieldStudentNumber, "abc")

	s.ErrorIs(ValidateSubmission(s.form), model.ErrValidationFailed)
}

func (s *FormSuite) TestValidateSubmissionRejectsUnknownProgram() {
	s.fill()
	s.form.Program = "Culinary Arts"
	s.form.YearLevel = "1st Year"

	s.ErrorIs(ValidateSubmission(s.form), model.ErrInvalidProgram)
}

func (s *FormSuite) TestValidateSubmissionRejectsYearLevelOutsideProgram() {
	s.fill()
	// The diploma program only offers three year levels
	s.form.YearLevel = "4th Year"

	s.ErrorIs(ValidateSubmission(s.form), model.ErrInvalidYearLevel)
}
