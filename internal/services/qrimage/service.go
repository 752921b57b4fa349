// Package qrimage adapts the external QR encoding library behind a small
// interface so the submission workflow can be tested without rendering
// real images.
package qrimage

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log/slog"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/jpmiranda/regform/internal/model"
)

// ImageSize is the square edge length of rendered images, in pixels
const ImageSize = 300

// Encoder turns an identity record into a scannable image
type Encoder interface {
	Encode(record *model.IdentityRecord) (*model.EncodedImage, error)
}

// Service is the production Encoder backed by skip2/go-qrcode
type Service struct {
	logger *slog.Logger

	dark  color.Color
	light color.Color
}

// Ensure Service implements Encoder
var _ Encoder = (*Service)(nil)

// New creates a new encoder service with the fixed dark-on-light palette
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		dark:   color.Black,
		light:  color.White,
	}
}

// Encode serializes the record to JSON and renders it as a square PNG.
// Struct-order marshalling keeps the payload stable, so encoding the same
// record twice yields byte-identical images. The medium recovery level
// tolerates the minor degradation of printed or re-photographed codes.
//
// The returned image carries the record ID so callers can discard results
// that arrive after the session has moved on to a different record.
func (s *Service) Encode(record *model.IdentityRecord) (*model.EncodedImage, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodingFailed, err)
	}

	code, err := qrcode.New(string(payload), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodingFailed, err)
	}
	code.ForegroundColor = s.dark
	code.BackgroundColor = s.light

	png, err := code.PNG(ImageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodingFailed, err)
	}

	s.logger.Debug("encoded registration record",
		slog.String("record_id", record.ID),
		slog.Int("payload_bytes", len(payload)),
	)

	return &model.EncodedImage{
		PNG:      png,
		Payload:  payload,
		RecordID: record.ID,
	}, nil
}
