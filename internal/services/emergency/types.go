package emergency

import (
	"log/slog"

	"github.com/KirkDiggler/emergency-d20/internal/common/clock"
	"github.com/KirkDiggler/emergency-d20/internal/dice"
	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	checkRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
)

// Flag names written under FlagScope
const (
	FlagScope = "emergency-d20"

	FlagUsed          = "used"
	FlagIsEmergency   = "isEmergency"
	FlagSourceCheckID = "sourceCheckId"
	FlagActorID       = "actorId"
	FlagItemID        = "itemId"

	// EmergencyLabel is appended to the flavor of every emergency reroll
	EmergencyLabel = "Emergency D20"
)

// RerollState is a step of the reroll state machine
type RerollState string

const (
	StateIdle                 RerollState = "idle"
	StateAuthorizing          RerollState = "authorizing"
	StateCheckingAvailability RerollState = "checking_availability"
	StateConsuming            RerollState = "consuming"
	StateRolling              RerollState = "rolling"
	StatePublishing           RerollState = "publishing"
	StateTagging              RerollState = "tagging"
	StateDone                 RerollState = "done"
)

// SkipReason explains why a check was rendered without the affordance
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipIsEmergency SkipReason = "is_emergency"
	SkipUsed        SkipReason = "used"
	SkipNoRolls     SkipReason = "no_rolls"
	SkipNotD20      SkipReason = "not_d20"
	SkipNoActor     SkipReason = "no_actor"
	SkipNotOwner    SkipReason = "not_owner"
	SkipNoItem      SkipReason = "no_item"
	SkipNoUsesLeft  SkipReason = "no_uses_left"
)

// Config holds configuration for the emergency reroll service
type Config struct {
	// ItemName is the resource item name, resolved once at startup
	ItemName string

	// GMUserIDs may reroll for any actor
	GMUserIDs []string

	// Repository dependencies
	ActorRepo actorRepo.Repository
	TokenRepo tokenRepo.Repository
	CheckRepo checkRepo.Repository

	// Service dependencies
	Table      Table
	DiceRoller dice.Roller
	Messaging  messaging.Service
	Clock      clock.Clock
	Logger     *slog.Logger
}

// Affordance is the reroll button attached to a check, identified by its references only
type Affordance struct {
	CheckID string
	ActorID string
	ItemID  string
}

// ClassifyInput contains parameters for classifying a rendered check
type ClassifyInput struct {
	// Check is the check result being rendered
	Check *models.CheckResult

	// ViewerID is the Discord user the check is rendered for
	ViewerID string
}

// ClassifyOutput contains the classification decision
type ClassifyOutput struct {
	// Eligible indicates the affordance should be attached
	Eligible bool

	// Reason explains a skip, empty when eligible
	Reason SkipReason

	// Affordance is set when eligible
	Affordance *Affordance
}

// UseEmergencyRerollInput contains the references carried by an affordance
type UseEmergencyRerollInput struct {
	CheckID string
	ActorID string
	ItemID  string

	// InvokerID is the Discord user who pressed the button
	InvokerID string

	// ChannelID is where notices go when the check cannot be found
	ChannelID string
}

// RerollInput contains the resolved values a reroll runs on
type RerollInput struct {
	Check     *models.CheckResult
	Actor     *models.Actor
	Item      *models.Item
	InvokerID string
}

// RerollOutput contains the result of a completed reroll
type RerollOutput struct {
	// State is the final state, StateDone on success
	State RerollState

	// Reroll is the newly published check
	Reroll *models.CheckResult

	// Formula is the formula that was rolled
	Formula string

	// Modifier is the non-die modifier carried over from the original check
	Modifier int

	// Pool is the resource pool observed before consumption
	Pool models.ResourcePool
}

// ResolveSpeakerInput contains parameters for resolving a speaker
type ResolveSpeakerInput struct {
	Speaker  models.Speaker
	ViewerID string
}

// ResolutionSource identifies which rule resolved a speaker
type ResolutionSource string

const (
	ResolvedByActor     ResolutionSource = "actor"
	ResolvedByToken     ResolutionSource = "token"
	ResolvedBySelection ResolutionSource = "selection"
	Unresolved          ResolutionSource = "unresolved"
)

// SpeakerResolution is the outcome of resolving a speaker
type SpeakerResolution struct {
	Actor  *models.Actor
	Source ResolutionSource
}

// PublishCheckInput contains parameters for publishing a new check
type PublishCheckInput struct {
	ChannelID string
	AuthorID  string
	Speaker   models.Speaker
	Flavor    string
	Roll      *models.Roll
	Flags     models.Flags
}

// RemoveAffordanceInput identifies the check whose button is removed
type RemoveAffordanceInput struct {
	Check *models.CheckResult
}

// NotifyInput contains a notice for one user
type NotifyInput struct {
	UserID    string
	ChannelID string
	Level     messaging.NoticeLevel
	Message   string
}
