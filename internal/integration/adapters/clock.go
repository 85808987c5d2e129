// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface using wall-clock time.
type systemClock struct{}

// NewSystemClock creates a Clock backed by the system time in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time in UTC.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
