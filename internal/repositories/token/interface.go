package token

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/emergency-d20/internal/repositories/token Repository

import (
	"context"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Repository defines the interface for token placement and selection
type Repository interface {
	// SaveToken persists a token
	SaveToken(ctx context.Context, input *SaveTokenInput) error

	// GetToken retrieves a token by ID
	GetToken(ctx context.Context, input *GetTokenInput) (*models.Token, error)

	// GetActorTokens retrieves the tokens placed for an actor
	GetActorTokens(ctx context.Context, input *GetActorTokensInput) (*GetActorTokensOutput, error)

	// SelectTokens replaces the set of tokens a user currently controls
	SelectTokens(ctx context.Context, input *SelectTokensInput) error

	// GetSelectedTokens retrieves the tokens a user currently controls
	GetSelectedTokens(ctx context.Context, input *GetSelectedTokensInput) (*GetSelectedTokensOutput, error)
}
