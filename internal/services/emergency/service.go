package emergency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/emergency-d20/internal/common/clock"
	"github.com/KirkDiggler/emergency-d20/internal/dice"
	"github.com/KirkDiggler/emergency-d20/internal/metrics"
	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	checkRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	itemName   string
	gmUserIDs  map[string]struct{}
	actorRepo  actorRepo.Repository
	tokenRepo  tokenRepo.Repository
	checkRepo  checkRepo.Repository
	table      Table
	diceRoller dice.Roller
	messaging  messaging.Service
	clock      clock.Clock
	logger     *slog.Logger
	ledger     *Ledger
}

// New creates a new emergency reroll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if strings.TrimSpace(cfg.ItemName) == "" {
		return nil, ErrEmptyItemName
	}
	if cfg.ActorRepo == nil {
		return nil, ErrNilActorRepo
	}
	if cfg.TokenRepo == nil {
		return nil, ErrNilTokenRepo
	}
	if cfg.CheckRepo == nil {
		return nil, ErrNilCheckRepo
	}
	if cfg.Table == nil {
		return nil, ErrNilTable
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	gms := make(map[string]struct{}, len(cfg.GMUserIDs))
	for _, id := range cfg.GMUserIDs {
		gms[id] = struct{}{}
	}

	return &service{
		itemName:   cfg.ItemName,
		gmUserIDs:  gms,
		actorRepo:  cfg.ActorRepo,
		tokenRepo:  cfg.TokenRepo,
		checkRepo:  cfg.CheckRepo,
		table:      cfg.Table,
		diceRoller: cfg.DiceRoller,
		messaging:  cfg.Messaging,
		clock:      clk,
		logger:     logger.With("component", "emergency"),
		ledger:     NewLedger(cfg.ActorRepo, logger),
	}, nil
}

// Classify decides whether a rendered check should carry the reroll affordance.
// Skips are reported through the output, never as errors.
func (s *service) Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	if input == nil || input.Check == nil {
		return nil, errors.New("check is required")
	}
	check := input.Check

	skip := func(reason SkipReason) (*ClassifyOutput, error) {
		s.logger.Debug("check not offered an emergency reroll", "check_id", check.ID, "reason", reason)
		metrics.ChecksSkipped.WithLabelValues(string(reason)).Inc()
		return &ClassifyOutput{Reason: reason}, nil
	}

	if decision := EvaluateGuard(check); decision != GuardProceed {
		return skip(decision.skipReason())
	}

	if check.PrimaryRoll() == nil {
		return skip(SkipNoRolls)
	}
	if !IsD20Check(check) {
		return skip(SkipNotD20)
	}

	resolution := s.ResolveSpeaker(ctx, &ResolveSpeakerInput{
		Speaker:  check.Speaker,
		ViewerID: input.ViewerID,
	})
	if resolution.Actor == nil {
		return skip(SkipNoActor)
	}
	actor := resolution.Actor

	if !s.canControl(actor, input.ViewerID) {
		return skip(SkipNotOwner)
	}

	item := FindResourceItem(actor, s.itemName)
	if item == nil {
		return skip(SkipNoItem)
	}
	if !HasUsesRemaining(item) {
		return skip(SkipNoUsesLeft)
	}

	metrics.AffordancesOffered.Inc()
	return &ClassifyOutput{
		Eligible: true,
		Affordance: &Affordance{
			CheckID: check.ID,
			ActorID: actor.ID,
			ItemID:  item.ID,
		},
	}, nil
}

// UseEmergencyReroll re-resolves the references carried by an affordance and runs the reroll
func (s *service) UseEmergencyReroll(ctx context.Context, input *UseEmergencyRerollInput) (*RerollOutput, error) {
	if input == nil {
		return nil, errors.New("input is required")
	}

	log := s.logger.With("check_id", input.CheckID, "actor_id", input.ActorID, "item_id", input.ItemID, "invoker_id", input.InvokerID)

	check, err := s.checkRepo.GetCheck(ctx, &checkRepo.GetCheckInput{
		CheckID: input.CheckID,
	})
	if err != nil {
		log.Error("could not find the check for an emergency reroll", "error", err)
		s.notify(ctx, input.InvokerID, input.ChannelID, messaging.NoticeCheckNotFound)
		s.reject(StateIdle, ErrCheckNotFound)
		return nil, &RerollError{State: StateIdle, Err: fmt.Errorf("%w: %w", ErrUnresolvable, ErrCheckNotFound)}
	}

	actor, err := s.actorRepo.GetActor(ctx, &actorRepo.GetActorInput{
		ActorID: input.ActorID,
	})
	if err != nil {
		log.Error("could not find the actor for an emergency reroll", "error", err)
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeActorNotFound)
		s.reject(StateIdle, ErrActorNotFound)
		return nil, &RerollError{State: StateIdle, Err: fmt.Errorf("%w: %w", ErrUnresolvable, ErrActorNotFound)}
	}

	item := actor.Item(input.ItemID)
	if item == nil {
		log.Error("could not find the item for an emergency reroll")
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeItemNotFound)
		s.reject(StateIdle, ErrItemNotFound)
		return nil, &RerollError{State: StateIdle, Err: fmt.Errorf("%w: %w", ErrUnresolvable, ErrItemNotFound)}
	}

	return s.Reroll(ctx, &RerollInput{
		Check:     check,
		Actor:     actor,
		Item:      item,
		InvokerID: input.InvokerID,
	})
}

// Reroll runs the state machine: authorize, check availability, consume,
// mark used, roll, publish the tagged result and drop the old affordance.
func (s *service) Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil || input.Check == nil || input.Actor == nil || input.Item == nil {
		return nil, &RerollError{State: StateIdle, Err: ErrUnresolvable}
	}

	started := s.clock.Now()
	check, actor, item := input.Check, input.Actor, input.Item
	log := s.logger.With("check_id", check.ID, "actor_id", actor.ID, "item_id", item.ID, "invoker_id", input.InvokerID)

	// Idle
	if decision := EvaluateGuard(check); decision != GuardProceed || !IsD20Check(check) {
		log.Debug("check is not eligible for an emergency reroll", "guard", decision)
		s.reject(StateIdle, ErrIneligible)
		return nil, &RerollError{State: StateIdle, Err: ErrIneligible}
	}

	// Authorizing
	if !s.canControl(actor, input.InvokerID) {
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeUnauthorized)
		s.reject(StateAuthorizing, ErrUnauthorized)
		return nil, &RerollError{State: StateAuthorizing, Err: ErrUnauthorized}
	}

	// CheckingAvailability
	pool := models.PoolOf(item)
	if !HasUsesRemaining(item) {
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeExhausted)
		s.reject(StateCheckingAvailability, ErrExhausted)
		return nil, &RerollError{State: StateCheckingAvailability, Err: ErrExhausted}
	}

	// Consuming
	consumed, err := s.ledger.Consume(ctx, item)
	if err != nil || !consumed {
		if err == nil {
			err = ErrExhausted
		}
		log.Warn("could not consume emergency reroll resource", "pool", pool.String(), "error", err)
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeConsumeFailed)
		s.reject(StateConsuming, ErrExhausted)
		return nil, &RerollError{State: StateConsuming, Err: fmt.Errorf("%w: %w", ErrExhausted, err)}
	}

	err = s.checkRepo.SetFlag(ctx, &checkRepo.SetFlagInput{
		CheckID: check.ID,
		Scope:   FlagScope,
		Key:     FlagUsed,
		Value:   "true",
	})
	if err != nil {
		log.Warn("could not mark check as used", "error", err)
	}
	if check.Flags == nil {
		check.Flags = models.Flags{}
	}
	check.Flags[models.FlagKey(FlagScope, FlagUsed)] = "true"

	// Rolling
	primary := check.PrimaryRoll()
	modifier := ExtractModifier(primary)
	formula := RerollFormula(modifier)

	roll, err := s.diceRoller.Evaluate(formula)
	if err != nil {
		log.Error("emergency reroll evaluation failed", "formula", formula, "error", err)
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeEvaluationFailure)
		s.reject(StateRolling, ErrEvaluationFailure)
		return nil, &RerollError{State: StateRolling, Err: fmt.Errorf("%w: %w", ErrEvaluationFailure, err)}
	}
	roll.Flavor = rerollFlavor(check)

	// Publishing
	reroll, err := s.table.PublishCheck(ctx, &PublishCheckInput{
		ChannelID: check.ChannelID,
		AuthorID:  input.InvokerID,
		Speaker:   check.Speaker,
		Flavor:    roll.Flavor,
		Roll:      roll,
		Flags: models.Flags{
			models.FlagKey(FlagScope, FlagSourceCheckID): check.ID,
			models.FlagKey(FlagScope, FlagActorID):       actor.ID,
			models.FlagKey(FlagScope, FlagItemID):        item.ID,
			models.FlagKey(FlagScope, FlagIsEmergency):   "true",
		},
	})
	if err != nil {
		log.Error("could not publish emergency reroll", "error", err)
		s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticePublishFailure)
		s.reject(StatePublishing, ErrPublishFailure)
		return nil, &RerollError{State: StatePublishing, Err: fmt.Errorf("%w: %w", ErrPublishFailure, err)}
	}

	// Tagging
	err = s.checkRepo.SetFlag(ctx, &checkRepo.SetFlagInput{
		CheckID: reroll.ID,
		Scope:   FlagScope,
		Key:     FlagIsEmergency,
		Value:   "true",
	})
	if err != nil {
		log.Warn("could not tag emergency reroll", "reroll_id", reroll.ID, "error", err)
	}
	if reroll.Flags == nil {
		reroll.Flags = models.Flags{}
	}
	reroll.Flags[models.FlagKey(FlagScope, FlagIsEmergency)] = "true"

	if err := s.table.RemoveAffordance(ctx, &RemoveAffordanceInput{Check: check}); err != nil {
		log.Warn("could not remove emergency reroll button", "error", err)
	}

	s.notify(ctx, input.InvokerID, check.ChannelID, messaging.NoticeRerollUsed)

	metrics.RerollsCompleted.WithLabelValues(string(pool.Kind)).Inc()
	metrics.RerollDuration.Observe(s.clock.Now().Sub(started).Seconds())
	log.Info("emergency reroll published", "reroll_id", reroll.ID, "formula", formula, "total", roll.Total, "pool", pool.String())

	return &RerollOutput{
		State:    StateDone,
		Reroll:   reroll,
		Formula:  formula,
		Modifier: modifier,
		Pool:     pool,
	}, nil
}

func (s *service) canControl(actor *models.Actor, userID string) bool {
	if actor.IsOwnedBy(userID) {
		return true
	}
	_, isGM := s.gmUserIDs[userID]
	return isGM
}

func (s *service) notify(ctx context.Context, userID, channelID string, kind messaging.NoticeKind) {
	notice, err := s.messaging.GetNoticeMessage(ctx, &messaging.GetNoticeMessageInput{
		Kind:     kind,
		ItemName: s.itemName,
	})
	if err != nil {
		s.logger.Error("could not render notice", "kind", kind, "error", err)
		return
	}

	s.table.Notify(ctx, &NotifyInput{
		UserID:    userID,
		ChannelID: channelID,
		Level:     notice.Level,
		Message:   notice.Message,
	})
}

func (s *service) reject(state RerollState, reason error) {
	metrics.RerollsRejected.WithLabelValues(string(state), reason.Error()).Inc()
}

func rerollFlavor(check *models.CheckResult) string {
	flavor := EmergencyLabel
	if primary := check.PrimaryRoll(); primary != nil && primary.Flavor != "" {
		flavor = primary.Flavor
	} else if check.Flavor != "" {
		flavor = check.Flavor
	}
	return fmt.Sprintf("%s (%s)", flavor, EmergencyLabel)
}
