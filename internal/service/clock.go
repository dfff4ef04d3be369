package service

import "time"

type systemClock struct{}

// NewSystemClock returns a TimeProvider backed by the wall clock.
func NewSystemClock() TimeProvider {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
