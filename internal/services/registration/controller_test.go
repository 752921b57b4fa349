package registration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jpmiranda/regform/internal/dependencies/mocks"
	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/services/qrimage"
	"github.com/jpmiranda/regform/internal/storage/memory"
	"github.com/jpmiranda/regform/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	encoder    *qrimage.MockEncoder
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.encoder = qrimage.NewMockEncoder()
	s.controller = NewController(s.storage, s.encoder, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// newForm creates a fresh form session with a fixed ID
func (s *ControllerSuite) newForm() *model.Form {
	s.random.QueueString("form1abcdefg")
	f, err := s.controller.CreateForm(s.ctx)
	s.Require().NoError(err)
	return f
}

// fillForm populates every field with valid values
func (s *ControllerSuite) fillForm(formID model.FormID) {
	for field, value := range map[model.Field]string{
		model.FieldStudentNumber: "2023-00011-TG-0",
		model.FieldLastName:      "Cruz",
		model.FieldFirstName:     "Ana",
		model.FieldProgram:       model.ProgramDIT,
	} {
		_, err := s.controller.UpdateField(s.ctx, formID, field, value)
		s.Require().NoError(err)
	}
	// Year level after program, since choosing a program clears it
	_, err := s.controller.UpdateField(s.ctx, formID, model.FieldYearLevel, "2nd Year")
	s.Require().NoError(err)
}

// CreateForm / GetForm tests

func (s *ControllerSuite) TestCreateFormStartsEditing() {
	f := s.newForm()

	s.Equal(model.FormID("form1abcdefg"), f.ID)
	s.Equal(model.PhaseEditing, f.Phase)
	s.Empty(f.FieldErrors)
	s.Nil(f.Record)
}

func (s *ControllerSuite) TestCreateFormPersistsForm() {
	f := s.newForm()

	stored, err := s.storage.GetForm(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(f.ID, stored.ID)
}

func (s *ControllerSuite) TestGetFormNotFound() {
	_, err := s.controller.GetForm(s.ctx, "missing")
	s.ErrorIs(err, model.ErrFormNotFound)
}

// UpdateField tests

func (s *ControllerSuite) TestUpdateFieldStoresValueAndError() {
	f := s.newForm()

	updated, err := s.controller.UpdateField(s.ctx, f.ID, model.FieldStudentNumber, "abc")
	s.Require().NoError(err)
	s.Equal("abc", updated.StudentNumber)
	s.Contains(updated.FieldErrors, model.FieldStudentNumber)
}

func (s *ControllerSuite) TestUpdateFieldRejectsUnknownField() {
	f := s.newForm()

	_, err := s.controller.UpdateField(s.ctx, f.ID, "middle_name", "x")
	s.ErrorIs(err, model.ErrUnknownField)
}

func (s *ControllerSuite) TestUpdateFieldRejectedAfterSubmission() {
	f := s.newForm()
	s.fillForm(f.ID)

	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	_, err = s.controller.UpdateField(s.ctx, f.ID, model.FieldFirstName, "Maria")
	s.ErrorIs(err, model.ErrAlreadySubmitted)
}

// Submit tests

func (s *ControllerSuite) TestSubmitBuildsAndPersistsRecord() {
	f := s.newForm()
	s.fillForm(f.ID)

	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	s.Equal(model.PhaseReady, submitted.Phase)
	s.Require().NotNil(submitted.Record)

	wantID := model.NewRecordID("2023-00011-TG-0", s.clock.Now())
	s.Equal(wantID, submitted.Record.ID)
	s.Equal("Ana Cruz", submitted.Record.FullName)
	s.Equal(model.ProgramDIT, submitted.Record.Program)
	s.Equal("2nd Year", submitted.Record.YearLevel)
	s.Equal(s.clock.Now(), submitted.Record.RegistrationDate)

	stored, err := s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)
	s.Equal(wantID, stored.ID)
}

func (s *ControllerSuite) TestSubmitMakesImageAvailable() {
	f := s.newForm()
	s.fillForm(f.ID)

	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	img, err := s.controller.Image(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(submitted.Record.ID, img.RecordID)
	s.NotEmpty(img.PNG)
}

func (s *ControllerSuite) TestSubmitIncompleteWritesNothing() {
	f := s.newForm()
	_, err := s.controller.UpdateField(s.ctx, f.ID, model.FieldStudentNumber, "2023-00011-TG-0")
	s.Require().NoError(err)

	_, err = s.controller.Submit(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrIncompleteSubmission)

	_, err = s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.ErrorIs(err, model.ErrRecordNotFound)
	s.Zero(s.encoder.Calls)

	stored, err := s.storage.GetForm(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEditing, stored.Phase)
}

func (s *ControllerSuite) TestSubmitRejectsFieldErrors() {
	f := s.newForm()
	s.fillForm(f.ID)
	_, err := s.controller.UpdateField(s.ctx, f.ID, model.FieldStudentNumber, "abc")
	s.Require().NoError(err)

	_, err = s.controller.Submit(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrValidationFailed)
}

func (s *ControllerSuite) TestSubmitTwiceRejected() {
	f := s.newForm()
	s.fillForm(f.ID)

	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	_, err = s.controller.Submit(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrAlreadySubmitted)
}

func (s *ControllerSuite) TestSubmitPersistenceFailureKeepsEditing() {
	f := s.newForm()
	s.fillForm(f.ID)
	s.storage.FailRecordWrites(true)

	_, err := s.controller.Submit(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrPersistenceFailed)
	s.Zero(s.encoder.Calls)

	stored, err := s.storage.GetForm(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEditing, stored.Phase)
	s.Nil(stored.Record)

	// The same form can be submitted again once the store recovers
	s.storage.FailRecordWrites(false)
	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseReady, submitted.Phase)
}

// Encoding tests

func (s *ControllerSuite) TestSubmitEncodingFailureKeepsRecord() {
	f := s.newForm()
	s.fillForm(f.ID)
	s.encoder.Err = context.DeadlineExceeded

	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseEncodingFailed, submitted.Phase)
	s.NotNil(submitted.Record)

	// Registration itself succeeded
	_, err = s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)

	_, err = s.controller.Image(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrImageNotReady)
}

func (s *ControllerSuite) TestRetryEncodeAfterFailure() {
	f := s.newForm()
	s.fillForm(f.ID)
	s.encoder.Err = context.DeadlineExceeded
	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	s.encoder.Err = nil
	retried, err := s.controller.RetryEncode(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseReady, retried.Phase)
	s.Equal(submitted.Record.ID, retried.Record.ID)

	img, err := s.controller.Image(s.ctx, f.ID)
	s.Require().NoError(err)
	s.Equal(submitted.Record.ID, img.RecordID)
}

func (s *ControllerSuite) TestRetryEncodeWithoutSubmission() {
	f := s.newForm()

	_, err := s.controller.RetryEncode(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrNotSubmitted)
}

func (s *ControllerSuite) TestReencodeProducesIdenticalPayload() {
	f := s.newForm()
	s.fillForm(f.ID)

	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)
	first, err := s.controller.Image(s.ctx, f.ID)
	s.Require().NoError(err)

	// Time moving on must not change the encoded payload
	s.clock.Advance(time.Hour)
	_, err = s.controller.RetryEncode(s.ctx, f.ID)
	s.Require().NoError(err)
	second, err := s.controller.Image(s.ctx, f.ID)
	s.Require().NoError(err)

	s.Equal(first.Payload, second.Payload)
	s.Equal(first.RecordID, second.RecordID)
}

func (s *ControllerSuite) TestEncodeResultDiscardedAfterReset() {
	f := s.newForm()
	s.fillForm(f.ID)

	// Reset the form while the encode is in flight
	s.encoder.Hook = func() {
		s.encoder.Hook = nil
		_, err := s.controller.Reset(s.ctx, f.ID)
		s.Require().NoError(err)
	}

	submitted, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	// The stale result is dropped, not attached to the reset form
	s.Equal(model.PhaseEditing, submitted.Phase)
	s.Nil(submitted.Record)
	_, err = s.controller.Image(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrImageNotReady)

	// The record itself was already persisted before encoding began
	_, err = s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.NoError(err)
}

// Reset tests

func (s *ControllerSuite) TestResetClearsSessionState() {
	f := s.newForm()
	s.fillForm(f.ID)
	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	reset, err := s.controller.Reset(s.ctx, f.ID)
	s.Require().NoError(err)

	s.Equal(f.ID, reset.ID)
	s.Equal(model.PhaseEditing, reset.Phase)
	s.Empty(reset.StudentNumber)
	s.Empty(reset.FieldErrors)
	s.Nil(reset.Record)

	_, err = s.controller.Image(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrImageNotReady)
}

func (s *ControllerSuite) TestResetKeepsPersistedRecord() {
	f := s.newForm()
	s.fillForm(f.ID)
	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	_, err = s.controller.Reset(s.ctx, f.ID)
	s.Require().NoError(err)

	record, err := s.controller.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)
	s.Equal("Ana Cruz", record.FullName)
}

func (s *ControllerSuite) TestResubmitSameStudentNumberOverwrites() {
	f := s.newForm()
	s.fillForm(f.ID)
	first, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	_, err = s.controller.Reset(s.ctx, f.ID)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	s.fillForm(f.ID)
	_, err = s.controller.UpdateField(s.ctx, f.ID, model.FieldFirstName, "Maria")
	s.Require().NoError(err)

	second, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)
	s.NotEqual(first.Record.ID, second.Record.ID)

	record, err := s.controller.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)
	s.Equal(second.Record.ID, record.ID)
	s.Equal("Maria Cruz", record.FullName)
}

// DeleteForm tests

func (s *ControllerSuite) TestDeleteFormRemovesSession() {
	f := s.newForm()
	s.fillForm(f.ID)
	_, err := s.controller.Submit(s.ctx, f.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.DeleteForm(s.ctx, f.ID))

	_, err = s.controller.GetForm(s.ctx, f.ID)
	s.ErrorIs(err, model.ErrFormNotFound)

	// The persisted record survives
	_, err = s.controller.GetRecord(s.ctx, "2023-00011-TG-0")
	s.NoError(err)
}

func (s *ControllerSuite) TestDeleteFormNotFound() {
	err := s.controller.DeleteForm(s.ctx, "missing")
	s.ErrorIs(err, model.ErrFormNotFound)
}

// GetRecord tests

func (s *ControllerSuite) TestGetRecordNotFound() {
	_, err := s.controller.GetRecord(s.ctx, "2023-99999-TG-9")
	s.ErrorIs(err, model.ErrRecordNotFound)
}
