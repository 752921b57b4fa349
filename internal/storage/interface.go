package storage

import (
	"context"

	"github.com/jpmiranda/regform/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Form session operations
	SaveForm(ctx context.Context, form *model.Form) error
	GetForm(ctx context.Context, id model.FormID) (*model.Form, error)
	DeleteForm(ctx context.Context, id model.FormID) error

	// Registration record operations. Records are keyed by student number
	// (storage key "student_<studentNumber>"); saving an existing key
	// overwrites the previous record.
	SaveRecord(ctx context.Context, record *model.IdentityRecord) error
	GetRecord(ctx context.Context, studentNumber string) (*model.IdentityRecord, error)
}
