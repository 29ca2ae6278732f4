package emergency

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/emergency-d20/internal/services/emergency Service
//go:generate mockgen -package=mocks -destination=mocks/mock_table.go github.com/KirkDiggler/emergency-d20/internal/services/emergency Table

import (
	"context"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Service defines the interface for emergency reroll operations
type Service interface {
	// Classify decides whether a rendered check should carry the reroll affordance
	Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error)

	// UseEmergencyReroll resolves an affordance's references and runs the reroll
	UseEmergencyReroll(ctx context.Context, input *UseEmergencyRerollInput) (*RerollOutput, error)

	// Reroll runs the reroll state machine on an already resolved check, actor and item
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// ResolveSpeaker maps a check's speaker to an actor
	ResolveSpeaker(ctx context.Context, input *ResolveSpeakerInput) *SpeakerResolution
}

// Table is the host surface the reroll publishes through
type Table interface {
	// PublishCheck posts a new check result to the table
	PublishCheck(ctx context.Context, input *PublishCheckInput) (*models.CheckResult, error)

	// RemoveAffordance takes the reroll button off a displayed check
	RemoveAffordance(ctx context.Context, input *RemoveAffordanceInput) error

	// Notify shows a message to a user without waiting for delivery
	Notify(ctx context.Context, input *NotifyInput)
}
