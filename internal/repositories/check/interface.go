package check

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/emergency-d20/internal/repositories/check Repository

import (
	"context"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Repository defines the interface for check result persistence
type Repository interface {
	// SaveCheck persists a new check result and its initial flags
	SaveCheck(ctx context.Context, input *SaveCheckInput) error

	// GetCheck retrieves a check result and its flags by ID
	GetCheck(ctx context.Context, input *GetCheckInput) (*models.CheckResult, error)

	// SetFlag writes one namespaced annotation on a check result
	SetFlag(ctx context.Context, input *SetFlagInput) error

	// SetMessageID records the Discord message rendering a check result
	SetMessageID(ctx context.Context, input *SetMessageIDInput) error
}
