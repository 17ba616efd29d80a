package id

import (
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator issues random version 4 UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID based ID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
