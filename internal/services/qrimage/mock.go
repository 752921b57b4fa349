package qrimage

import (
	"encoding/json"
	"fmt"

	"github.com/jpmiranda/regform/internal/model"
)

// MockEncoder is a test Encoder that fabricates deterministic images
// without touching the QR library. Set Err to force a failure.
type MockEncoder struct {
	Err error

	// Calls counts Encode invocations
	Calls int

	// Hook, if set, runs at the start of every Encode. Tests use it to
	// interleave other operations with an in-flight encode.
	Hook func()
}

var _ Encoder = (*MockEncoder)(nil)

func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

func (m *MockEncoder) Encode(record *model.IdentityRecord) (*model.EncodedImage, error) {
	m.Calls++
	if m.Hook != nil {
		m.Hook()
	}
	if m.Err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodingFailed, m.Err)
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodingFailed, err)
	}
	return &model.EncodedImage{
		PNG:      []byte("png:" + record.ID),
		Payload:  payload,
		RecordID: record.ID,
	}, nil
}
