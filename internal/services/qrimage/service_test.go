package qrimage

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpmiranda/regform/internal/model"
	"github.com/jpmiranda/regform/internal/testutil"
)

func testRecord() *model.IdentityRecord {
	registered := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.IdentityRecord{
		ID:               model.NewRecordID("2023-00011-TG-0", registered),
		StudentNumber:    "2023-00011-TG-0",
		FullName:         "Ana Cruz",
		Program:          model.ProgramDIT,
		YearLevel:        "2nd Year",
		RegistrationDate: registered,
	}
}

func TestEncodeProducesPNG(t *testing.T) {
	svc := New(testutil.NopLogger())

	img, err := svc.Encode(testRecord())
	require.NoError(t, err)

	// PNG signature
	assert.True(t, bytes.HasPrefix(img.PNG, []byte{0x89, 'P', 'N', 'G'}))
	assert.Equal(t, testRecord().ID, img.RecordID)
}

func TestEncodePayloadIsRecordJSON(t *testing.T) {
	svc := New(testutil.NopLogger())
	record := testRecord()

	img, err := svc.Encode(record)
	require.NoError(t, err)

	var decoded model.IdentityRecord
	require.NoError(t, json.Unmarshal(img.Payload, &decoded))
	assert.Equal(t, *record, decoded)
}

func TestEncodeIsDeterministic(t *testing.T) {
	svc := New(testutil.NopLogger())
	record := testRecord()

	first, err := svc.Encode(record)
	require.NoError(t, err)
	second, err := svc.Encode(record)
	require.NoError(t, err)

	assert.Equal(t, first.Payload, second.Payload)
	assert.Equal(t, first.PNG, second.PNG)
}

func TestDataURIHasPNGPrefix(t *testing.T) {
	svc := New(testutil.NopLogger())

	img, err := svc.Encode(testRecord())
	require.NoError(t, err)

	assert.Contains(t, img.DataURI(), "data:image/png;base64,")
}

func TestImageFileName(t *testing.T) {
	assert.Equal(t, "Ana_Cruz_QRCode.png", model.ImageFileName("Ana", "Cruz"))
}
