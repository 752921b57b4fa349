package factory

import (
	"time"

	"github.com/jpmiranda/regform/internal/dependencies/mocks"
	"github.com/jpmiranda/regform/internal/services/qrimage"
	"github.com/jpmiranda/regform/internal/storage/memory"
	"github.com/jpmiranda/regform/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MockEncoder *qrimage.MockEncoder
	MemStore    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockEncoder := qrimage.NewMockEncoder()

	app := newWithDependencies(store, mockClock, mockRandom, mockEncoder, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MockEncoder: mockEncoder,
		MemStore:    store,
	}
}
