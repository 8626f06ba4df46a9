package clock

import (
	"time"

	"perkpass/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a clock backed by the wall clock in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
