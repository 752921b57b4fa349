// Package registration implements the form lifecycle, from field edits
// through validation, identity record persistence, and image encoding.
package registration

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jpmiranda/regform/internal/dependencies/clock"
	"github.com/jpmiranda/regform/internal/dependencies/random"
	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/services/form"
	"github.com/jpmiranda/regform/internal/services/qrimage"
	"github.com/jpmiranda/regform/internal/storage"
)

// Controller manages registration form state and the submission flow
type Controller struct {
	storage storage.Storage
	encoder qrimage.Encoder
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// Encoded images live only for the lifetime of the process. They are
	// derived data and are never persisted alongside the records.
	imagesMu sync.Mutex
	images   map[model.FormID]*model.EncodedImage
}

// NewController creates a new registration Controller
func NewController(
	storage storage.Storage,
	encoder qrimage.Encoder,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		encoder: encoder,
		clock:   clock,
		random:  random,
		logger:  logger,
		images:  make(map[model.FormID]*model.EncodedImage),
	}
}

// CreateForm initializes a new empty registration form
func (c *Controller) CreateForm(ctx context.Context) (*model.Form, error) {
	now := c.clock.Now()
	formID := model.FormID(c.random.String(random.SessionIDLength, random.SessionIDAlphabet))

	f := model.NewForm(formID, now)
	if err := c.storage.SaveForm(ctx, f); err != nil {
		c.logger.Error("failed to save form",
			slog.String("form_id", string(formID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("form created", slog.String("form_id", string(formID)))

	return f, nil
}

// GetForm retrieves a form by ID
func (c *Controller) GetForm(ctx context.Context, formID model.FormID) (*model.Form, error) {
	return c.storage.GetForm(ctx, formID)
}

// UpdateField applies a single field edit and re-validates that field.
// Edits are only accepted while the form is still being edited.
func (c *Controller) UpdateField(ctx context.Context, formID model.FormID, field model.Field, value string) (*model.Form, error) {
	f, err := c.storage.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if f.Phase != model.PhaseEditing {
		return nil, model.ErrAlreadySubmitted
	}

	if err := form.ApplyField(f, field, value); err != nil {
		return nil, err
	}
	f.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveForm(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

// Submit validates the form, persists the identity record, and encodes it.
// Persistence and encoding are separate stages: once the record is saved
// the registration has succeeded, even if encoding then fails. A form in
// the encoding-failed phase still holds its record and can retry.
func (c *Controller) Submit(ctx context.Context, formID model.FormID) (*model.Form, error) {
	f, err := c.storage.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if f.Phase != model.PhaseEditing {
		return nil, model.ErrAlreadySubmitted
	}

	if err := form.ValidateSubmission(f); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	record := &model.IdentityRecord{
		ID:               model.NewRecordID(f.StudentNumber, now),
		StudentNumber:    f.StudentNumber,
		FullName:         f.FirstName + " " + f.LastName,
		Program:          f.Program,
		YearLevel:        f.YearLevel,
		RegistrationDate: now,
	}

	f.Phase = model.PhaseSubmitting
	if err := c.storage.SaveRecord(ctx, record); err != nil {
		// The record never made it to storage, so the form stays editable
		f.Phase = model.PhaseEditing
		c.logger.Error("failed to persist identity record",
			slog.String("form_id", string(formID)),
			slog.String("record_id", record.ID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	f.Record = record
	f.Phase = model.PhasePersisted
	f.UpdatedAt = now
	if err := c.storage.SaveForm(ctx, f); err != nil {
		return nil, err
	}

	c.logger.Info("registration persisted",
		slog.String("form_id", string(formID)),
		slog.String("record_id", record.ID),
		slog.String("student_number", f.StudentNumber),
	)

	return c.encodeRecord(ctx, f)
}

// RetryEncode re-runs encoding for a form whose record is already
// persisted. Forms that never submitted have nothing to encode.
func (c *Controller) RetryEncode(ctx context.Context, formID model.FormID) (*model.Form, error) {
	f, err := c.storage.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	if f.Record == nil {
		return nil, model.ErrNotSubmitted
	}

	return c.encodeRecord(ctx, f)
}

// encodeRecord runs the encoding stage for the form's current record.
// Encoding failure is not fatal: the phase records it and the caller can
// retry. A result is discarded if the form moved on to a different record
// (or was reset) while encoding ran.
func (c *Controller) encodeRecord(ctx context.Context, f *model.Form) (*model.Form, error) {
	record := f.Record
	f.Phase = model.PhaseEncoding

	image, err := c.encoder.Encode(record)

	// Reload before applying the result: a concurrent reset or resubmit
	// may have replaced the record this image was built from.
	current, getErr := c.storage.GetForm(ctx, f.ID)
	if getErr != nil {
		return nil, getErr
	}
	if current.Record == nil || current.Record.ID != record.ID {
		c.logger.Warn("discarding stale encode result",
			slog.String("form_id", string(f.ID)),
			slog.String("record_id", record.ID),
		)
		return current, nil
	}
	f = current

	if err != nil {
		f.Phase = model.PhaseEncodingFailed
		f.UpdatedAt = c.clock.Now()
		c.logger.Error("failed to encode record",
			slog.String("form_id", string(f.ID)),
			slog.String("record_id", record.ID),
			slog.String("error", err.Error()),
		)
		if saveErr := c.storage.SaveForm(ctx, f); saveErr != nil {
			return nil, saveErr
		}
		return f, nil
	}

	c.imagesMu.Lock()
	c.images[f.ID] = image
	c.imagesMu.Unlock()

	f.Phase = model.PhaseReady
	f.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveForm(ctx, f); err != nil {
		return nil, err
	}

	c.logger.Info("record encoded",
		slog.String("form_id", string(f.ID)),
		slog.String("record_id", record.ID),
		slog.Int("png_bytes", len(image.PNG)),
	)

	return f, nil
}

// Image returns the encoded image for a form, if encoding has completed
func (c *Controller) Image(ctx context.Context, formID model.FormID) (*model.EncodedImage, error) {
	f, err := c.storage.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	c.imagesMu.Lock()
	image, ok := c.images[formID]
	c.imagesMu.Unlock()

	if !ok || f.Phase != model.PhaseReady {
		return nil, model.ErrImageNotReady
	}

	return image, nil
}

// Reset returns the form to its initial empty state in a single step.
// Any record already persisted from a previous submission stays in
// storage; only the session state is cleared.
func (c *Controller) Reset(ctx context.Context, formID model.FormID) (*model.Form, error) {
	f, err := c.storage.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	fresh := model.NewForm(f.ID, f.CreatedAt)
	fresh.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveForm(ctx, fresh); err != nil {
		return nil, err
	}

	c.imagesMu.Lock()
	delete(c.images, formID)
	c.imagesMu.Unlock()

	c.logger.Info("form reset", slog.String("form_id", string(formID)))

	return fresh, nil
}

// DeleteForm discards a form session entirely, along with any encoded
// image. Persisted records are untouched, as with Reset.
func (c *Controller) DeleteForm(ctx context.Context, formID model.FormID) error {
	if _, err := c.storage.GetForm(ctx, formID); err != nil {
		return err
	}

	if err := c.storage.DeleteForm(ctx, formID); err != nil {
		return err
	}

	c.imagesMu.Lock()
	delete(c.images, formID)
	c.imagesMu.Unlock()

	c.logger.Info("form deleted", slog.String("form_id", string(formID)))

	return nil
}

// GetRecord looks up a persisted identity record by student number
func (c *Controller) GetRecord(ctx context.Context, studentNumber string) (*model.IdentityRecord, error) {
	return c.storage.GetRecord(ctx, studentNumber)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateForm(ctx context.Context) (*model.Form, error)
	GetForm(ctx context.Context, formID model.FormID) (*model.Form, error)
	UpdateField(ctx context.Context, formID model.FormID, field model.Field, value string) (*model.Form, error)
	Submit(ctx context.Context, formID model.FormID) (*model.Form, error)
	RetryEncode(ctx context.Context, formID model.FormID) (*model.Form, error)
	Image(ctx context.Context, formID model.FormID) (*model.EncodedImage, error)
	Reset(ctx context.Context, formID model.FormID) (*model.Form, error)
	DeleteForm(ctx context.Context, formID model.FormID) error
	GetRecord(ctx context.Context, studentNumber string) (*model.IdentityRecord, error)
}

var _ ControllerInterface = (*Controller)(nil)
