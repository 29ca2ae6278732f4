package emergency_test

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/emergency-d20/internal/common/clock/mocks"
	diceMocks "github.com/KirkDiggler/emergency-d20/internal/dice/mocks"
	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
	actorMocks "github.com/KirkDiggler/emergency-d20/internal/repositories/actor/mocks"
	checkRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/check"
	checkMocks "github.com/KirkDiggler/emergency-d20/internal/repositories/check/mocks"
	tokenRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/token"
	tokenMocks "github.com/KirkDiggler/emergency-d20/internal/repositories/token/mocks"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	emergencyMocks "github.com/KirkDiggler/emergency-d20/internal/services/emergency/mocks"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmergencyServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockActorRepo  *actorMocks.MockRepository
	mockTokenRepo  *tokenMocks.MockRepository
	mockCheckRepo  *checkMocks.MockRepository
	mockTable      *emergencyMocks.MockTable
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	service        emergency.Service
	ctx            context.Context

	// Test data
	testTime    time.Time
	testGMID    string
	testOwnerID string
	testOtherID string

	// Reusable test fixtures
	actor *models.Actor
	item  *models.Item
	check *models.CheckResult
}

func (s *EmergencyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockActorRepo = actorMocks.NewMockRepository(s.mockCtrl)
	s.mockTokenRepo = tokenMocks.NewMockRepository(s.mockCtrl)
	s.mockCheckRepo = checkMocks.NewMockRepository(s.mockCtrl)
	s.mockTable = emergencyMocks.NewMockTable(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	s.testGMID = "gm-1"
	s.testOwnerID = "user-1"
	s.testOtherID = "user-2"
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	notices, err := messaging.NewService(&messaging.ServiceConfig{DefaultTone: messaging.ToneNeutral})
	s.Require().NoError(err)

	service, err := emergency.New(&emergency.Config{
		ItemName:   "Emergency D20",
		GMUserIDs:  []string{s.testGMID},
		ActorRepo:  s.mockActorRepo,
		TokenRepo:  s.mockTokenRepo,
		CheckRepo:  s.mockCheckRepo,
		Table:      s.mockTable,
		DiceRoller: s.mockDiceRoller,
		Messaging:  notices,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = service

	s.item = &models.Item{
		ID:       "item-1",
		ActorID:  "actor-1",
		Name:     "Emergency D20",
		Quantity: intPtr(1),
	}
	s.actor = &models.Actor{
		ID:       "actor-1",
		Name:     "Valeria",
		OwnerIDs: []string{s.testOwnerID},
		Items: []*models.Item{
			{ID: "item-0", ActorID: "actor-1", Name: "Rope", Quantity: intPtr(1)},
			s.item,
		},
	}
	s.check = &models.CheckResult{
		ID:        "check-1",
		ChannelID: "channel-1",
		MessageID: "message-1",
		AuthorID:  s.testOwnerID,
		Speaker:   models.Speaker{ActorID: "actor-1", Alias: "Valeria"},
		Flavor:    "Stealth",
		Rolls: []*models.Roll{{
			Formula: "1d20+3",
			Terms:   []*models.Term{d20Term(12), numericTerm("+", 3)},
			Total:   15,
		}},
		CreatedAt: s.testTime,
	}
}

func (s *EmergencyServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEmergencyServiceSuite(t *testing.T) {
	suite.Run(t, new(EmergencyServiceTestSuite))
}

func (s *EmergencyServiceTestSuite) expectWarning(userID, message string) {
	s.mockTable.EXPECT().Notify(s.ctx, &emergency.NotifyInput{
		UserID:    userID,
		ChannelID: "channel-1",
		Level:     messaging.NoticeLevelWarning,
		Message:   message,
	})
}

// expectSuccessfulReroll sets up every call of a reroll on the fixtures that rolls newRoll
func (s *EmergencyServiceTestSuite) expectSuccessfulReroll(invokerID, formula string, pool string, newRoll *models.Roll) *models.CheckResult {
	published := &models.CheckResult{
		ID:        "check-2",
		ChannelID: "channel-1",
		AuthorID:  invokerID,
		Speaker:   s.check.Speaker,
		Rolls:     []*models.Roll{newRoll},
		CreatedAt: s.testTime,
	}

	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, &actorRepo.UpdateItemInput{
			ItemID:    "item-1",
			Increment: map[string]int64{pool: -1},
		}).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, &checkRepo.SetFlagInput{
			CheckID: "check-1",
			Scope:   emergency.FlagScope,
			Key:     emergency.FlagUsed,
			Value:   "true",
		}).Return(nil),
		s.mockDiceRoller.EXPECT().Evaluate(formula).Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, input *emergency.PublishCheckInput) (*models.CheckResult, error) {
				published.Flavor = input.Flavor
				published.Flags = input.Flags
				return published, nil
			}),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, &checkRepo.SetFlagInput{
			CheckID: "check-2",
			Scope:   emergency.FlagScope,
			Key:     emergency.FlagIsEmergency,
			Value:   "true",
		}).Return(nil),
		s.mockTable.EXPECT().RemoveAffordance(s.ctx, &emergency.RemoveAffordanceInput{Check: s.check}).Return(nil),
		s.mockTable.EXPECT().Notify(s.ctx, &emergency.NotifyInput{
			UserID:    invokerID,
			ChannelID: "channel-1",
			Level:     messaging.NoticeLevelInfo,
			Message:   "Emergency D20 used!",
		}),
	)

	return published
}

func (s *EmergencyServiceTestSuite) TestNewValidatesConfig() {
	_, err := emergency.New(nil)
	s.ErrorIs(err, emergency.ErrNilConfig)

	_, err = emergency.New(&emergency.Config{ItemName: "  "})
	s.ErrorIs(err, emergency.ErrEmptyItemName)

	_, err = emergency.New(&emergency.Config{ItemName: "Emergency D20"})
	s.ErrorIs(err, emergency.ErrNilActorRepo)

	_, err = emergency.New(&emergency.Config{
		ItemName:  "Emergency D20",
		ActorRepo: s.mockActorRepo,
		TokenRepo: s.mockTokenRepo,
		CheckRepo: s.mockCheckRepo,
		Table:     s.mockTable,
	})
	s.ErrorIs(err, emergency.ErrNilDiceRoller)
}

func (s *EmergencyServiceTestSuite) TestRerollWithModifier() {
	newRoll := &models.Roll{
		Formula: "1d20+3",
		Terms:   []*models.Term{d20Term(16), numericTerm("+", 3)},
		Total:   19,
	}
	published := s.expectSuccessfulReroll(s.testOwnerID, "1d20+3", models.ItemFieldQuantity, newRoll)

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.Require().NoError(err)

	s.Equal(emergency.StateDone, output.State)
	s.Equal("1d20+3", output.Formula)
	s.Equal(3, output.Modifier)
	s.Equal(models.ResourcePool{Kind: models.PoolKindQuantity, Remaining: 1}, output.Pool)
	s.Same(published, output.Reroll)

	s.Equal("Stealth (Emergency D20)", published.Flavor)
	s.Equal("Stealth (Emergency D20)", newRoll.Flavor)
	s.Equal("check-1", published.Flags.Get(emergency.FlagScope, emergency.FlagSourceCheckID))
	s.Equal("actor-1", published.Flags.Get(emergency.FlagScope, emergency.FlagActorID))
	s.Equal("item-1", published.Flags.Get(emergency.FlagScope, emergency.FlagItemID))
	s.True(published.Flags.IsSet(emergency.FlagScope, emergency.FlagIsEmergency))
	s.True(s.check.Flags.IsSet(emergency.FlagScope, emergency.FlagUsed))
}

func (s *EmergencyServiceTestSuite) TestRerollPublishesOriginalSpeaker() {
	s.check.Speaker = models.Speaker{ActorID: "actor-1", TokenID: "token-1", Alias: "Val"}
	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(2), numericTerm("+", 3)}, Total: 5}

	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).DoAndReturn(
			func(ctx context.Context, input *emergency.PublishCheckInput) (*models.CheckResult, error) {
				s.Equal("channel-1", input.ChannelID)
				s.Equal(s.testOwnerID, input.AuthorID)
				s.Equal(models.Speaker{ActorID: "actor-1", TokenID: "token-1", Alias: "Val"}, input.Speaker)
				s.Same(newRoll, input.Roll)
				return &models.CheckResult{ID: "check-2"}, nil
			}),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().RemoveAffordance(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().Notify(s.ctx, gomock.Any()),
	)

	_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.Require().NoError(err)
}

func (s *EmergencyServiceTestSuite) TestRerollFlavorFallbacks() {
	tests := []struct {
		name        string
		rollFlavor  string
		checkFlavor string
		expected    string
	}{
		{"roll flavor wins", "Perception", "Stealth", "Perception (Emergency D20)"},
		{"check flavor", "", "Stealth", "Stealth (Emergency D20)"},
		{"default label", "", "", "Emergency D20 (Emergency D20)"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.check.Rolls[0].Flavor = tt.rollFlavor
			s.check.Flavor = tt.checkFlavor

			newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(7), numericTerm("+", 3)}, Total: 10}
			published := s.expectSuccessfulReroll(s.testOwnerID, "1d20+3", models.ItemFieldQuantity, newRoll)

			_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
				Check:     s.check,
				Actor:     s.actor,
				Item:      s.item,
				InvokerID: s.testOwnerID,
			})
			s.Require().NoError(err)
			s.Equal(tt.expected, published.Flavor)
		})
	}
}

func (s *EmergencyServiceTestSuite) TestRerollByGM() {
	s.item.Quantity = nil
	s.item.UsesValue = intPtr(2)

	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(4), numericTerm("+", 3)}, Total: 7}
	s.expectSuccessfulReroll(s.testGMID, "1d20+3", models.ItemFieldUsesValue, newRoll)

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testGMID,
	})
	s.Require().NoError(err)
	s.Equal(models.PoolKindUses, output.Pool.Kind)
}

func (s *EmergencyServiceTestSuite) TestRerollUnlimitedItem() {
	s.item.Quantity = nil
	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(20), numericTerm("+", 3)}, Total: 23}

	gomock.InOrder(
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).Return(&models.CheckResult{ID: "check-2"}, nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().RemoveAffordance(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().Notify(s.ctx, gomock.Any()),
	)

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.Require().NoError(err)
	s.True(output.Pool.IsUnlimited())
}

func (s *EmergencyServiceTestSuite) TestRerollUnauthorized() {
	s.expectWarning(s.testOtherID, "You do not control this actor.")

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOtherID,
	})
	s.Nil(output)
	s.ErrorIs(err, emergency.ErrUnauthorized)

	var rerollErr *emergency.RerollError
	s.Require().ErrorAs(err, &rerollErr)
	s.Equal(emergency.StateAuthorizing, rerollErr.State)
	s.Nil(s.check.Flags)
}

func (s *EmergencyServiceTestSuite) TestRerollExhausted() {
	s.item.Quantity = intPtr(0)
	s.expectWarning(s.testOwnerID, "No Emergency D20 remaining.")

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.Nil(output)
	s.ErrorIs(err, emergency.ErrExhausted)

	var rerollErr *emergency.RerollError
	s.Require().ErrorAs(err, &rerollErr)
	s.Equal(emergency.StateCheckingAvailability, rerollErr.State)
	s.Nil(s.check.Flags)
}

func (s *EmergencyServiceTestSuite) TestRerollConsumeFailure() {
	s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(actorRepo.ErrItemNotFound)
	s.expectWarning(s.testOwnerID, "Could not consume an Emergency D20.")

	_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.ErrorIs(err, emergency.ErrExhausted)
	s.ErrorIs(err, actorRepo.ErrItemNotFound)

	var rerollErr *emergency.RerollError
	s.Require().ErrorAs(err, &rerollErr)
	s.Equal(emergency.StateConsuming, rerollErr.State)
	s.False(s.check.Flags.IsSet(emergency.FlagScope, emergency.FlagUsed))
}

func (s *EmergencyServiceTestSuite) TestRerollEvaluationFailure() {
	evalErr := errors.New("dice service unavailable")
	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(nil, evalErr),
	)
	s.expectWarning(s.testOwnerID, "Emergency D20: The reroll could not be evaluated.")

	_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.ErrorIs(err, emergency.ErrEvaluationFailure)
	s.ErrorIs(err, evalErr)

	var rerollErr *emergency.RerollError
	s.Require().ErrorAs(err, &rerollErr)
	s.Equal(emergency.StateRolling, rerollErr.State)

	// The resource is spent and the original is marked used
	s.True(s.check.Flags.IsSet(emergency.FlagScope, emergency.FlagUsed))
}

func (s *EmergencyServiceTestSuite) TestRerollPublishFailure() {
	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(3), numericTerm("+", 3)}, Total: 6}
	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).Return(nil, errors.New("discord unavailable")),
	)
	s.expectWarning(s.testOwnerID, "Emergency D20: The reroll could not be posted.")

	_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.ErrorIs(err, emergency.ErrPublishFailure)
}

func (s *EmergencyServiceTestSuite) TestRerollToleratesTaggingFailures() {
	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(3), numericTerm("+", 3)}, Total: 6}
	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(errors.New("timeout")),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).Return(&models.CheckResult{ID: "check-2"}, nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(errors.New("timeout")),
		s.mockTable.EXPECT().RemoveAffordance(s.ctx, gomock.Any()).Return(errors.New("unknown message")),
		s.mockTable.EXPECT().Notify(s.ctx, gomock.Any()),
	)

	output, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
		Check:     s.check,
		Actor:     s.actor,
		Item:      s.item,
		InvokerID: s.testOwnerID,
	})
	s.Require().NoError(err)
	s.True(output.Reroll.Flags.IsSet(emergency.FlagScope, emergency.FlagIsEmergency))
}

func (s *EmergencyServiceTestSuite) TestRerollIneligibleIsSilent() {
	tests := []struct {
		name  string
		setup func()
	}{
		{"already used", func() {
			s.check.Flags = models.Flags{models.FlagKey(emergency.FlagScope, emergency.FlagUsed): "true"}
		}},
		{"emergency reroll", func() {
			s.check.Flags = models.Flags{models.FlagKey(emergency.FlagScope, emergency.FlagIsEmergency): "true"}
		}},
		{"not a d20 check", func() {
			s.check.Rolls = []*models.Roll{{Terms: []*models.Term{
				{Kind: models.TermKindDie, Count: 2, Faces: 6, Results: []int{1, 6}, Total: 7},
			}, Total: 7}}
		}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			_, err := s.service.Reroll(s.ctx, &emergency.RerollInput{
				Check:     s.check,
				Actor:     s.actor,
				Item:      s.item,
				InvokerID: s.testOwnerID,
			})
			s.ErrorIs(err, emergency.ErrIneligible)

			var rerollErr *emergency.RerollError
			s.Require().ErrorAs(err, &rerollErr)
			s.Equal(emergency.StateIdle, rerollErr.State)
		})
	}
}

func (s *EmergencyServiceTestSuite) TestUseEmergencyRerollIsIdempotent() {
	stored := *s.check
	s.mockCheckRepo.EXPECT().GetCheck(s.ctx, &checkRepo.GetCheckInput{CheckID: "check-1"}).
		DoAndReturn(func(ctx context.Context, input *checkRepo.GetCheckInput) (*models.CheckResult, error) {
			fresh := stored
			return &fresh, nil
		})
	s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "actor-1"}).Return(s.actor, nil).Times(2)

	newRoll := &models.Roll{Formula: "1d20+3", Terms: []*models.Term{d20Term(9), numericTerm("+", 3)}, Total: 12}
	gomock.InOrder(
		s.mockActorRepo.EXPECT().UpdateItem(s.ctx, gomock.Any()).Return(nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, &checkRepo.SetFlagInput{
			CheckID: "check-1",
			Scope:   emergency.FlagScope,
			Key:     emergency.FlagUsed,
			Value:   "true",
		}).DoAndReturn(func(ctx context.Context, input *checkRepo.SetFlagInput) error {
			stored.Flags = models.Flags{models.FlagKey(input.Scope, input.Key): input.Value}
			return nil
		}),
		s.mockDiceRoller.EXPECT().Evaluate("1d20+3").Return(newRoll, nil),
		s.mockTable.EXPECT().PublishCheck(s.ctx, gomock.Any()).Return(&models.CheckResult{ID: "check-2"}, nil),
		s.mockCheckRepo.EXPECT().SetFlag(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().RemoveAffordance(s.ctx, gomock.Any()).Return(nil),
		s.mockTable.EXPECT().Notify(s.ctx, gomock.Any()),
		s.mockCheckRepo.EXPECT().GetCheck(s.ctx, &checkRepo.GetCheckInput{CheckID: "check-1"}).
			DoAndReturn(func(ctx context.Context, input *checkRepo.GetCheckInput) (*models.CheckResult, error) {
				fresh := stored
				return &fresh, nil
			}),
	)

	input := &emergency.UseEmergencyRerollInput{
		CheckID:   "check-1",
		ActorID:   "actor-1",
		ItemID:    "item-1",
		InvokerID: s.testOwnerID,
		ChannelID: "channel-1",
	}

	output, err := s.service.UseEmergencyReroll(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(emergency.StateDone, output.State)

	_, err = s.service.UseEmergencyReroll(s.ctx, input)
	s.ErrorIs(err, emergency.ErrIneligible)
}

func (s *EmergencyServiceTestSuite) TestUseEmergencyRerollUnresolvable() {
	input := &emergency.UseEmergencyRerollInput{
		CheckID:   "check-1",
		ActorID:   "actor-1",
		ItemID:    "item-1",
		InvokerID: s.testOwnerID,
		ChannelID: "channel-1",
	}

	s.Run("missing check", func() {
		s.SetupTest()
		s.mockCheckRepo.EXPECT().GetCheck(s.ctx, gomock.Any()).Return(nil, checkRepo.ErrCheckNotFound)
		s.expectWarning(s.testOwnerID, "Emergency D20: Could not find the check.")

		_, err := s.service.UseEmergencyReroll(s.ctx, input)
		s.ErrorIs(err, emergency.ErrUnresolvable)
		s.ErrorIs(err, emergency.ErrCheckNotFound)
	})

	s.Run("missing actor", func() {
		s.SetupTest()
		s.mockCheckRepo.EXPECT().GetCheck(s.ctx, gomock.Any()).Return(s.check, nil)
		s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(nil, actorRepo.ErrActorNotFound)
		s.expectWarning(s.testOwnerID, "Emergency D20: Could not find actor.")

		_, err := s.service.UseEmergencyReroll(s.ctx, input)
		s.ErrorIs(err, emergency.ErrUnresolvable)
		s.ErrorIs(err, emergency.ErrActorNotFound)
	})

	s.Run("missing item", func() {
		s.SetupTest()
		s.actor.Items = s.actor.Items[:1]
		s.mockCheckRepo.EXPECT().GetCheck(s.ctx, gomock.Any()).Return(s.check, nil)
		s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(s.actor, nil)
		s.expectWarning(s.testOwnerID, "Emergency D20: Could not find Emergency D20 item.")

		_, err := s.service.UseEmergencyReroll(s.ctx, input)
		s.ErrorIs(err, emergency.ErrUnresolvable)
		s.ErrorIs(err, emergency.ErrItemNotFound)
	})
}

func (s *EmergencyServiceTestSuite) TestClassifyEligible() {
	s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "actor-1"}).Return(s.actor, nil)

	output, err := s.service.Classify(s.ctx, &emergency.ClassifyInput{
		Check:    s.check,
		ViewerID: s.testOwnerID,
	})
	s.Require().NoError(err)
	s.True(output.Eligible)
	s.Equal(emergency.SkipNone, output.Reason)
	s.Equal(&emergency.Affordance{CheckID: "check-1", ActorID: "actor-1", ItemID: "item-1"}, output.Affordance)
}

func (s *EmergencyServiceTestSuite) TestClassifyEligibleForGM() {
	s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(s.actor, nil)

	output, err := s.service.Classify(s.ctx, &emergency.ClassifyInput{
		Check:    s.check,
		ViewerID: s.testGMID,
	})
	s.Require().NoError(err)
	s.True(output.Eligible)
}

func (s *EmergencyServiceTestSuite) TestClassifySkips() {
	tests := []struct {
		name     string
		setup    func()
		viewerID string
		expected emergency.SkipReason
	}{
		{
			name: "emergency reroll",
			setup: func() {
				s.check.Flags = models.Flags{models.FlagKey(emergency.FlagScope, emergency.FlagIsEmergency): "true"}
			},
			expected: emergency.SkipIsEmergency,
		},
		{
			name: "already used",
			setup: func() {
				s.check.Flags = models.Flags{models.FlagKey(emergency.FlagScope, emergency.FlagUsed): "true"}
			},
			expected: emergency.SkipUsed,
		},
		{
			name:     "no rolls",
			setup:    func() { s.check.Rolls = nil },
			expected: emergency.SkipNoRolls,
		},
		{
			name: "damage roll",
			setup: func() {
				s.check.Rolls = []*models.Roll{{Formula: "2d6", Terms: []*models.Term{
					{Kind: models.TermKindDie, Operator: "+", Count: 2, Faces: 6, Results: []int{4, 5}, Total: 9},
				}, Total: 9}}
			},
			expected: emergency.SkipNotD20,
		},
		{
			name: "unresolved speaker",
			setup: func() {
				s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(nil, actorRepo.ErrActorNotFound)
				s.mockTokenRepo.EXPECT().GetSelectedTokens(s.ctx, gomock.Any()).Return(&tokenRepo.GetSelectedTokensOutput{}, nil)
			},
			expected: emergency.SkipNoActor,
		},
		{
			name: "viewer does not own the actor",
			setup: func() {
				s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(s.actor, nil)
			},
			viewerID: "user-2",
			expected: emergency.SkipNotOwner,
		},
		{
			name: "no resource item",
			setup: func() {
				s.actor.Items = s.actor.Items[:1]
				s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(s.actor, nil)
			},
			expected: emergency.SkipNoItem,
		},
		{
			name: "no uses left",
			setup: func() {
				s.item.Quantity = intPtr(0)
				s.item.UsesValue = intPtr(3)
				s.mockActorRepo.EXPECT().GetActor(s.ctx, gomock.Any()).Return(s.actor, nil)
			},
			expected: emergency.SkipNoUsesLeft,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setup()

			viewerID := tt.viewerID
			if viewerID == "" {
				viewerID = s.testOwnerID
			}

			output, err := s.service.Classify(s.ctx, &emergency.ClassifyInput{
				Check:    s.check,
				ViewerID: viewerID,
			})
			s.Require().NoError(err)
			s.False(output.Eligible)
			s.Nil(output.Affordance)
			s.Equal(tt.expected, output.Reason)
		})
	}
}

func (s *EmergencyServiceTestSuite) TestResolveSpeaker() {
	s.Run("by actor", func() {
		s.SetupTest()
		s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "actor-1"}).Return(s.actor, nil)

		resolution := s.service.ResolveSpeaker(s.ctx, &emergency.ResolveSpeakerInput{
			Speaker: models.Speaker{ActorID: "actor-1", TokenID: "token-1"},
		})
		s.Equal(emergency.ResolvedByActor, resolution.Source)
		s.Same(s.actor, resolution.Actor)
	})

	s.Run("by token", func() {
		s.SetupTest()
		gomock.InOrder(
			s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "gone"}).Return(nil, actorRepo.ErrActorNotFound),
			s.mockTokenRepo.EXPECT().GetToken(s.ctx, &tokenRepo.GetTokenInput{TokenID: "token-1"}).
				Return(&models.Token{ID: "token-1", ActorID: "actor-1"}, nil),
			s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "actor-1"}).Return(s.actor, nil),
		)

		resolution := s.service.ResolveSpeaker(s.ctx, &emergency.ResolveSpeakerInput{
			Speaker: models.Speaker{ActorID: "gone", TokenID: "token-1"},
		})
		s.Equal(emergency.ResolvedByToken, resolution.Source)
		s.Same(s.actor, resolution.Actor)
	})

	s.Run("by single selected token", func() {
		s.SetupTest()
		gomock.InOrder(
			s.mockTokenRepo.EXPECT().GetSelectedTokens(s.ctx, &tokenRepo.GetSelectedTokensInput{UserID: s.testOwnerID}).
				Return(&tokenRepo.GetSelectedTokensOutput{Tokens: []*models.Token{{ID: "token-1", ActorID: "actor-1"}}}, nil),
			s.mockActorRepo.EXPECT().GetActor(s.ctx, &actorRepo.GetActorInput{ActorID: "actor-1"}).Return(s.actor, nil),
		)

		resolution := s.service.ResolveSpeaker(s.ctx, &emergency.ResolveSpeakerInput{
			Speaker:  models.Speaker{Alias: "Valeria"},
			ViewerID: s.testOwnerID,
		})
		s.Equal(emergency.ResolvedBySelection, resolution.Source)
		s.Same(s.actor, resolution.Actor)
	})

	s.Run("several selected tokens", func() {
		s.SetupTest()
		s.mockTokenRepo.EXPECT().GetSelectedTokens(s.ctx, gomock.Any()).
			Return(&tokenRepo.GetSelectedTokensOutput{Tokens: []*models.Token{
				{ID: "token-1", ActorID: "actor-1"},
				{ID: "token-2", ActorID: "actor-2"},
			}}, nil)

		resolution := s.service.ResolveSpeaker(s.ctx, &emergency.ResolveSpeakerInput{
			ViewerID: s.testOwnerID,
		})
		s.Equal(emergency.Unresolved, resolution.Source)
		s.Nil(resolution.Actor)
	})

	s.Run("nothing to resolve", func() {
		s.SetupTest()
		resolution := s.service.ResolveSpeaker(s.ctx, &emergency.ResolveSpeakerInput{})
		s.Equal(emergency.Unresolved, resolution.Source)
		s.Nil(resolution.Actor)
	})
}
