package utils

import "github.com/google/uuid"

// TokenGenerator produces opaque change tokens. The only guarantee is that
// every call returns a value different from the previous ones; callers must
// never parse it.
type TokenGenerator interface {
	Generate() string
}

// UUIDGenerator issues time-ordered UUIDv7 strings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
