package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	mockSvc "perkpass/internal/mocks/service"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFrozenClock returns a clock mock pinned to testNow that tolerates any number of reads.
func newFrozenClock(t *testing.T) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	return clock
}
