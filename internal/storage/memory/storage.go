package memory

import (
	"context"
	"sync"

	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	forms   map[model.FormID]*model.Form
	records map[string]*model.IdentityRecord

	// failRecordWrites makes SaveRecord fail, simulating a full store.
	// Only settable from tests via FailRecordWrites.
	failRecordWrites bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		forms:   make(map[model.FormID]*model.Form),
		records: make(map[string]*model.IdentityRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Form session operations

func (s *Storage) SaveForm(ctx context.Context, form *model.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form.ID] = form
	return nil
}

func (s *Storage) GetForm(ctx context.Context, id model.FormID) (*model.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	form, ok := s.forms[id]
	if !ok {
		return nil, model.ErrFormNotFound
	}
	return form, nil
}

func (s *Storage) DeleteForm(ctx context.Context, id model.FormID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, id)
	return nil
}

// Registration record operations

func (s *Storage) SaveRecord(ctx context.Context, record *model.IdentityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRecordWrites {
		return model.ErrPersistenceFailed
	}
	s.records[model.RecordKey(record.StudentNumber)] = record
	return nil
}

func (s *Storage) GetRecord(ctx context.Context, studentNumber string) (*model.IdentityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[model.RecordKey(studentNumber)]
	if !ok {
		return nil, model.ErrRecordNotFound
	}
	return record, nil
}

// FailRecordWrites toggles simulated record-write failures for tests
func (s *Storage) FailRecordWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRecordWrites = fail
}
