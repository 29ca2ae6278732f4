package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/emergency-d20/internal/common/uuid UUID

// UUID generates the identifiers of stored records
type UUID interface {
	// NewUUID returns a new random identifier in canonical string form
	NewUUID() string
}

// DefaultUUID generates random version 4 UUIDs
type DefaultUUID struct{}

// New creates a generator backed by github.com/google/uuid
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}
