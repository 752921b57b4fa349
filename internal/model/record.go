package model

import (
	"encoding/base64"
	"fmt"
	"time"
)

// RecordIDPrefix is the fixed leading segment of generated record IDs
const RecordIDPrefix = "REG"

// RecordKeyPrefix is prepended to the student number to form the storage
// key for a registration record
const RecordKeyPrefix = "student_"

// IdentityRecord is the immutable, persisted summary of one registrant's
// confirmed data. It is built exactly once per successful submission and
// never mutated afterwards; a second submission under the same student
// number overwrites the first (last write wins).
//
// The JSON field order below is the exact payload handed to the encoder,
// so it must stay stable for repeated encodes to be byte-identical.
type IdentityRecord struct {
	ID               string    `json:"id"`
	StudentNumber    string    `json:"studentNumber"`
	FullName         string    `json:"fullName"`
	Program          string    `json:"program"`
	YearLevel        string    `json:"yearLevel"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// NewRecordID composes the deterministic record identifier from the fixed
// prefix, the student number, and the creation time at millisecond
// resolution. Downstream consumers must treat the result as opaque.
func NewRecordID(studentNumber string, createdAt time.Time) string {
	return fmt.Sprintf("%s-%s-%d", RecordIDPrefix, studentNumber, createdAt.UnixMilli())
}

// RecordKey returns the storage key for a student's registration record
func RecordKey(studentNumber string) string {
	return RecordKeyPrefix + studentNumber
}

// EncodedImage is the rendered QR image for one identity record. It is
// derived data: regenerated whenever a record is (re-)encoded and never
// persisted beyond the current session.
type EncodedImage struct {
	// PNG is the rendered image bytes
	PNG []byte

	// Payload is the exact serialized record the image encodes
	Payload []byte

	// RecordID identifies the record this image was rendered from, so a
	// late-arriving encode result can be matched against the session's
	// current record before being displayed.
	RecordID string
}

// DataURI returns the image as a portable data URI suitable for an <img>
// source or a browser-triggered download.
func (i *EncodedImage) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(i.PNG)
}

// ImageFileName returns the deterministic download name for a registrant's
// QR image.
func ImageFileName(firstName, lastName string) string {
	return fmt.Sprintf("%s_%s_QRCode.png", firstName, lastName)
}
