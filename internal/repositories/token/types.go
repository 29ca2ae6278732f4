package token

import "github.com/KirkDiggler/emergency-d20/internal/models"

type SaveTokenInput struct {
	Token *models.Token
}

type GetTokenInput struct {
	TokenID string
}

type SelectTokensInput struct {
	UserID   string
	TokenIDs []string
}

type GetSelectedTokensInput struct {
	UserID string
}

type GetSelectedTokensOutput struct {
	Tokens []*models.Token
}

type GetActorTokensInput struct {
	ActorID string
}

type GetActorTokensOutput struct {
	Tokens []*models.Token
}
