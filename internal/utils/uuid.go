package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for request correlation and
// locally created records. It prefers V7 identifiers, which carry a
// timestamp prefix and therefore sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a V7 UUID, falling back to a random V4 when the system
// entropy source refuses a timestamped one.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
