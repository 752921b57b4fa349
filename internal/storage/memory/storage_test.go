package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jpmiranda/regform/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Form tests

func (s *StorageSuite) TestSaveAndGetForm() {
	f := model.NewForm("form-1", time.Now())
	f.FirstName = "Ana"

	s.Require().NoError(s.storage.SaveForm(s.ctx, f))

	retrieved, err := s.storage.GetForm(s.ctx, "form-1")
	s.Require().NoError(err)
	s.Equal("Ana", retrieved.FirstName)
}

func (s *StorageSuite) TestGetFormNotFound() {
	_, err := s.storage.GetForm(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrFormNotFound)
}

func (s *StorageSuite) TestDeleteForm() {
	f := model.NewForm("form-1", time.Now())
	_ = s.storage.SaveForm(s.ctx, f)

	s.Require().NoError(s.storage.DeleteForm(s.ctx, "form-1"))

	_, err := s.storage.GetForm(s.ctx, "form-1")
	s.ErrorIs(err, model.ErrFormNotFound)
}

// Record tests

func (s *StorageSuite) TestSaveAndGetRecord() {
	record := &model.IdentityRecord{
		ID:            "REG-2023-00011-TG-0-1704110400000",
		StudentNumber: "2023-00011-TG-0",
		FullName:      "Ana Cruz",
	}

	s.Require().NoError(s.storage.SaveRecord(s.ctx, record))

	retrieved, err := s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)
	s.Equal("Ana Cruz", retrieved.FullName)
}

func (s *StorageSuite) TestGetRecordNotFound() {
	_, err := s.storage.GetRecord(s.ctx, "2023-99999-TG-9")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

func (s *StorageSuite) TestSaveRecordLastWriteWins() {
	first := &model.IdentityRecord{ID: "rec-1", StudentNumber: "2023-00011-TG-0", FullName: "Ana Cruz"}
	second := &model.IdentityRecord{ID: "rec-2", StudentNumber: "2023-00011-TG-0", FullName: "Maria Cruz"}

	_ = s.storage.SaveRecord(s.ctx, first)
	_ = s.storage.SaveRecord(s.ctx, second)

	retrieved, err := s.storage.GetRecord(s.ctx, "2023-00011-TG-0")
	s.Require().NoError(err)
	s.Equal("rec-2", retrieved.ID)
}

func (s *StorageSuite) TestFailRecordWrites() {
	s.storage.FailRecordWrites(true)

	err := s.storage.SaveRecord(s.ctx, &model.IdentityRecord{StudentNumber: "2023-00011-TG-0"})
	s.ErrorIs(err, model.ErrPersistenceFailed)

	s.storage.FailRecordWrites(false)
	err = s.storage.SaveRecord(s.ctx, &model.IdentityRecord{StudentNumber: "2023-00011-TG-0"})
	s.NoError(err)
}
