package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/emergency-d20/internal/repositories/settings Repository

import "context"

// Repository defines the interface for the persistent settings store
type Repository interface {
	// Register records a setting's definition, keeping any value already stored
	Register(ctx context.Context, input *RegisterInput) error

	// Get returns the stored value of a registered setting, or its default
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set stores a new value for a registered setting
	Set(ctx context.Context, input *SetInput) error
}
