package table

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/emergency-d20/internal/common/clock"
	"github.com/KirkDiggler/emergency-d20/internal/common/uuid"
	"github.com/KirkDiggler/emergency-d20/internal/dice"
	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	checkRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
)

// service implements the Service interface
type service struct {
	itemName      string
	gmUserIDs     map[string]struct{}
	actorRepo     actorRepo.Repository
	tokenRepo     tokenRepo.Repository
	checkRepo     checkRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *slog.Logger
}

// New creates a new table service
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
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gms := make(map[string]struct{}, len(cfg.GMUserIDs))
	for _, id := range cfg.GMUserIDs {
		gms[id] = struct{}{}
	}

	return &service{
		itemName:      cfg.ItemName,
		gmUserIDs:     gms,
		actorRepo:     cfg.ActorRepo,
		tokenRepo:     cfg.TokenRepo,
		checkRepo:     cfg.CheckRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.With("component", "table"),
	}, nil
}

// RollCheck evaluates a formula for a user and records the check
func (s *service) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	formula := input.Formula
	if strings.TrimSpace(formula) == "" {
		formula = DefaultFormula
	}

	roll, err := s.diceRoller.Evaluate(formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormula, err)
	}
	roll.Flavor = input.Flavor

	check, err := s.RecordCheck(ctx, &RecordCheckInput{
		ChannelID: input.ChannelID,
		AuthorID:  input.UserID,
		Speaker:   s.speakerFor(ctx, input.UserID, input.UserName),
		Flavor:    input.Flavor,
		Roll:      roll,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("check rolled", "check_id", check.ID, "user_id", input.UserID, "formula", roll.Formula, "total", roll.Total)

	return &RollCheckOutput{
		Check: check,
	}, nil
}

// RecordCheck stores a new check result with a fresh ID and timestamp
func (s *service) RecordCheck(ctx context.Context, input *RecordCheckInput) (*models.CheckResult, error) {
	if input == nil || input.Roll == nil {
		return nil, errors.New("input and roll cannot be nil")
	}

	check := &models.CheckResult{
		ID:        s.uuidGenerator.NewUUID(),
		ChannelID: input.ChannelID,
		AuthorID:  input.AuthorID,
		Speaker:   input.Speaker,
		Flavor:    input.Flavor,
		Rolls:     []*models.Roll{input.Roll},
		Flags:     input.Flags,
		CreatedAt: s.clock.Now(),
	}

	err := s.checkRepo.SaveCheck(ctx, &checkRepo.SaveCheckInput{
		Check: check,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record check: %w", err)
	}

	return check, nil
}

// AttachMessage links a check to the Discord message rendering it
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	if input == nil || input.CheckID == "" || input.MessageID == "" {
		return errors.New("check ID and message ID cannot be empty")
	}

	return s.checkRepo.SetMessageID(ctx, &checkRepo.SetMessageIDInput{
		CheckID:   input.CheckID,
		MessageID: input.MessageID,
	})
}

// GrantResource sets the quantity of a user's resource item, creating the
// actor, its token and the item as needed
func (s *service) GrantResource(ctx context.Context, input *GrantResourceInput) (*GrantResourceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}
	if !s.isGM(input.GMID) {
		return nil, ErrNotGM
	}
	if input.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	actor, created, err := s.ensureActor(ctx, input.UserID, input.UserName)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	item := emergency.FindResourceItem(actor, s.itemName)
	if item == nil {
		item = &models.Item{
			ID:       s.uuidGenerator.NewUUID(),
			ActorID:  actor.ID,
			Name:     s.itemName,
			Quantity: &quantity,
		}
		if err := s.actorRepo.AddItem(ctx, &actorRepo.AddItemInput{Item: item}); err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", s.itemName, err)
		}
		actor.Items = append(actor.Items, item)
	} else {
		err := s.actorRepo.UpdateItem(ctx, &actorRepo.UpdateItemInput{
			ItemID: item.ID,
			Set:    map[string]string{models.ItemFieldQuantity: strconv.Itoa(quantity)},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update %s: %w", s.itemName, err)
		}
		item.Quantity = &quantity
	}

	s.logger.Info("resource granted",
		"gm_id", input.GMID,
		"user_id", input.UserID,
		"actor_id", actor.ID,
		"item_id", item.ID,
		"quantity", quantity,
		"created_actor", created,
	)

	return &GrantResourceOutput{
		Actor:        actor,
		Item:         item,
		CreatedActor: created,
	}, nil
}

// SelectToken replaces a user's selection with the tokens of a target user's actor
func (s *service) SelectToken(ctx context.Context, input *SelectTokenInput) (*SelectTokenOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.TargetUserID == "" {
		err := s.tokenRepo.SelectTokens(ctx, &tokenRepo.SelectTokensInput{
			UserID: input.UserID,
		})
		if err != nil {
			return nil, err
		}
		return &SelectTokenOutput{Tokens: []*models.Token{}}, nil
	}

	actor, err := s.actorRepo.GetActorByOwner(ctx, &actorRepo.GetActorByOwnerInput{
		OwnerID: input.TargetUserID,
	})
	if err != nil {
		if errors.Is(err, actorRepo.ErrActorNotFound) {
			return nil, ErrNoActor
		}
		return nil, err
	}

	if !actor.IsOwnedBy(input.UserID) && !s.isGM(input.UserID) {
		return nil, ErrNotOwner
	}

	placed, err := s.tokenRepo.GetActorTokens(ctx, &tokenRepo.GetActorTokensInput{
		ActorID: actor.ID,
	})
	if err != nil {
		return nil, err
	}
	if len(placed.Tokens) == 0 {
		return nil, ErrNoTokens
	}

	tokenIDs := make([]string, len(placed.Tokens))
	for i, token := range placed.Tokens {
		tokenIDs[i] = token.ID
	}

	err = s.tokenRepo.SelectTokens(ctx, &tokenRepo.SelectTokensInput{
		UserID:   input.UserID,
		TokenIDs: tokenIDs,
	})
	if err != nil {
		return nil, err
	}

	return &SelectTokenOutput{
		Tokens: placed.Tokens,
	}, nil
}

// GetResourceStatus reports the resource pool of a user's actor
func (s *service) GetResourceStatus(ctx context.Context, input *GetResourceStatusInput) (*GetResourceStatusOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	actor, err := s.actorRepo.GetActorByOwner(ctx, &actorRepo.GetActorByOwnerInput{
		OwnerID: input.UserID,
	})
	if err != nil {
		if errors.Is(err, actorRepo.ErrActorNotFound) {
			return nil, ErrNoActor
		}
		return nil, err
	}

	output := &GetResourceStatusOutput{
		Actor: actor,
		Item:  emergency.FindResourceItem(actor, s.itemName),
	}
	if output.Item != nil {
		output.Pool = models.PoolOf(output.Item)
	}

	selected, err := s.tokenRepo.GetSelectedTokens(ctx, &tokenRepo.GetSelectedTokensInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}
	output.Selected = selected.Tokens

	return output, nil
}

// speakerFor picks the single selected token, then the user's actor, then the user's name
func (s *service) speakerFor(ctx context.Context, userID, userName string) models.Speaker {
	selected, err := s.tokenRepo.GetSelectedTokens(ctx, &tokenRepo.GetSelectedTokensInput{
		UserID: userID,
	})
	if err != nil {
		s.logger.Warn("could not read token selection", "user_id", userID, "error", err)
	} else if len(selected.Tokens) == 1 {
		token := selected.Tokens[0]
		return models.Speaker{
			ActorID: token.ActorID,
			TokenID: token.ID,
			Alias:   token.Name,
		}
	}

	actor, err := s.actorRepo.GetActorByOwner(ctx, &actorRepo.GetActorByOwnerInput{
		OwnerID: userID,
	})
	if err == nil {
		return models.Speaker{
			ActorID: actor.ID,
			Alias:   actor.Name,
		}
	}

	return models.Speaker{Alias: userName}
}

func (s *service) ensureActor(ctx context.Context, userID, userName string) (*models.Actor, bool, error) {
	actor, err := s.actorRepo.GetActorByOwner(ctx, &actorRepo.GetActorByOwnerInput{
		OwnerID: userID,
	})
	if err == nil {
		return actor, false, nil
	}
	if !errors.Is(err, actorRepo.ErrActorNotFound) {
		return nil, false, err
	}

	if userName == "" {
		userName = userID
	}

	actor = &models.Actor{
		ID:       s.uuidGenerator.NewUUID(),
		Name:     userName,
		OwnerIDs: []string{userID},
	}
	if err := s.actorRepo.SaveActor(ctx, &actorRepo.SaveActorInput{Actor: actor}); err != nil {
		return nil, false, fmt.Errorf("failed to create actor: %w", err)
	}

	token := &models.Token{
		ID:      s.uuidGenerator.NewUUID(),
		ActorID: actor.ID,
		Name:    userName,
	}
	if err := s.tokenRepo.SaveToken(ctx, &tokenRepo.SaveTokenInput{Token: token}); err != nil {
		return nil, false, fmt.Errorf("failed to place token: %w", err)
	}

	return actor, true, nil
}

func (s *service) isGM(userID string) bool {
	_, ok := s.gmUserIDs[userID]
	return ok
}
