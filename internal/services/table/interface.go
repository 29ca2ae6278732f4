package table

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/emergency-d20/internal/services/table Service

import (
	"context"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Service defines the interface for table operations outside the reroll itself
type Service interface {
	// RollCheck evaluates a formula for a user and records the check
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)

	// RecordCheck stores a new check result with a fresh ID and timestamp
	RecordCheck(ctx context.Context, input *RecordCheckInput) (*models.CheckResult, error)

	// AttachMessage links a check to the Discord message rendering it
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// GrantResource sets the quantity of a user's resource item, GM only
	GrantResource(ctx context.Context, input *GrantResourceInput) (*GrantResourceOutput, error)

	// SelectToken replaces a user's selection with the tokens of a target user's actor
	SelectToken(ctx context.Context, input *SelectTokenInput) (*SelectTokenOutput, error)

	// GetResourceStatus reports the resource pool of a user's actor
	GetResourceStatus(ctx context.Context, input *GetResourceStatusInput) (*GetResourceStatusOutput, error)
}
