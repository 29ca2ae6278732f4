package table

import (
	"log/slog"

	"github.com/KirkDiggler/emergency-d20/internal/common/clock"
	"github.com/KirkDiggler/emergency-d20/internal/common/uuid"
	"github.com/KirkDiggler/emergency-d20/internal/dice"
	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	checkRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
)

// DefaultFormula is rolled when a check is requested without a formula
const DefaultFormula = "1d20"

// Config holds configuration for the table service
type Config struct {
	// ItemName is the resource item name, resolved once at startup
	ItemName string

	// GMUserIDs may grant resources and select any token
	GMUserIDs []string

	// Repository dependencies
	ActorRepo actorRepo.Repository
	TokenRepo tokenRepo.Repository
	CheckRepo checkRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

// RollCheckInput contains parameters for rolling a check
type RollCheckInput struct {
	UserID    string
	UserName  string
	ChannelID string

	// Formula defaults to DefaultFormula
	Formula string

	// Flavor is the label shown with the check (optional)
	Flavor string
}

// RollCheckOutput contains the recorded check
type RollCheckOutput struct {
	Check *models.CheckResult
}

// RecordCheckInput contains the parts of a new check result
type RecordCheckInput struct {
	ChannelID string
	AuthorID  string
	Speaker   models.Speaker
	Flavor    string
	Roll      *models.Roll
	Flags     models.Flags
}

// AttachMessageInput links a check to its Discord message
type AttachMessageInput struct {
	CheckID   string
	MessageID string
}

// GrantResourceInput contains parameters for granting the resource item
type GrantResourceInput struct {
	// GMID is the user granting the resource
	GMID string

	// UserID and UserName identify the receiving user
	UserID   string
	UserName string

	// Quantity is the new quantity of the item
	Quantity int
}

// GrantResourceOutput contains the receiving actor and its updated item
type GrantResourceOutput struct {
	Actor *models.Actor
	Item  *models.Item

	// CreatedActor indicates the user had no actor before the grant
	CreatedActor bool
}

// SelectTokenInput contains parameters for selecting tokens
type SelectTokenInput struct {
	UserID string

	// TargetUserID owns the actor whose tokens are selected, empty clears the selection
	TargetUserID string
}

// SelectTokenOutput contains the new selection
type SelectTokenOutput struct {
	Tokens []*models.Token
}

// GetResourceStatusInput contains parameters for reading a user's resource
type GetResourceStatusInput struct {
	UserID string
}

// GetResourceStatusOutput contains a user's actor and resource pool
type GetResourceStatusOutput struct {
	Actor *models.Actor

	// Item is nil when the actor carries no resource item
	Item *models.Item
	Pool models.ResourcePool

	// Selected contains the user's currently selected tokens
	Selected []*models.Token
}
