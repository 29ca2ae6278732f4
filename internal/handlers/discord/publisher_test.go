package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/KirkDiggler/emergency-d20/internal/services/table"
	tableMocks "github.com/KirkDiggler/emergency-d20/internal/services/table/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeMessenger records the messages a publisher sends and edits
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []*discordgo.MessageSend
	edits   []*discordgo.MessageEdit
	sendErr error
	editErr error
	sentCh  chan *discordgo.MessageSend
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{sentCh: make(chan *discordgo.MessageSend, 10)}
}

func (f *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, data)
	f.sentCh <- data
	return &discordgo.Message{ID: "message-2", ChannelID: channelID}, nil
}

func (f *fakeMessenger) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return nil, f.editErr
	}
	f.edits = append(f.edits, m)
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

type PublisherTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockTableService *tableMocks.MockService
	messenger        *fakeMessenger
	publisher        *Publisher
	ctx              context.Context
}

func (s *PublisherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTableService = tableMocks.NewMockService(s.mockCtrl)
	s.messenger = newFakeMessenger()
	s.ctx = context.Background()

	notices, err := messaging.NewService(nil)
	s.Require().NoError(err)

	publisher, err := NewPublisher(&PublisherConfig{
		Messenger:    s.messenger,
		TableService: s.mockTableService,
		Messaging:    notices,
	})
	s.Require().NoError(err)
	s.publisher = publisher
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherTestSuite))
}

func (s *PublisherTestSuite) TestPublishCheck() {
	roll := testCheck().PrimaryRoll()
	flags := models.Flags{
		models.FlagKey(emergency.FlagScope, emergency.FlagIsEmergency):   "true",
		models.FlagKey(emergency.FlagScope, emergency.FlagSourceCheckID): "check-1",
	}

	gomock.InOrder(
		s.mockTableService.EXPECT().RecordCheck(s.ctx, &table.RecordCheckInput{
			ChannelID: "channel-1",
			AuthorID:  "user-1",
			Speaker:   models.Speaker{ActorID: "actor-1", Alias: "Valeria"},
			Flavor:    "Stealth (Emergency D20)",
			Roll:      roll,
			Flags:     flags,
		}).Return(&models.CheckResult{
			ID:        "check-2",
			ChannelID: "channel-1",
			Speaker:   models.Speaker{ActorID: "actor-1", Alias: "Valeria"},
			Flavor:    "Stealth (Emergency D20)",
			Rolls:     []*models.Roll{roll},
			Flags:     flags,
			CreatedAt: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC),
		}, nil),
		s.mockTableService.EXPECT().AttachMessage(s.ctx, &table.AttachMessageInput{
			CheckID:   "check-2",
			MessageID: "message-2",
		}).Return(nil),
	)

	check, err := s.publisher.PublishCheck(s.ctx, &emergency.PublishCheckInput{
		ChannelID: "channel-1",
		AuthorID:  "user-1",
		Speaker:   models.Speaker{ActorID: "actor-1", Alias: "Valeria"},
		Flavor:    "Stealth (Emergency D20)",
		Roll:      roll,
		Flags:     flags,
	})
	s.Require().NoError(err)
	s.Equal("message-2", check.MessageID)

	s.Require().Len(s.messenger.sent, 1)
	sent := s.messenger.sent[0]
	s.Empty(sent.Components)
	s.Require().Len(sent.Embeds, 1)
	s.Equal("Valeria rerolls!", sent.Embeds[0].Title)
}

func (s *PublisherTestSuite) TestPublishCheckSendFailure() {
	s.messenger.sendErr = errors.New("missing access")
	s.mockTableService.EXPECT().RecordCheck(s.ctx, gomock.Any()).Return(testCheck(), nil)

	_, err := s.publisher.PublishCheck(s.ctx, &emergency.PublishCheckInput{
		ChannelID: "channel-1",
		Roll:      testCheck().PrimaryRoll(),
	})
	s.Error(err)
}

func (s *PublisherTestSuite) TestRemoveAffordance() {
	check := testCheck()
	check.MessageID = "message-1"

	s.Require().NoError(s.publisher.RemoveAffordance(s.ctx, &emergency.RemoveAffordanceInput{Check: check}))
	s.Require().Len(s.messenger.edits, 1)

	edit := s.messenger.edits[0]
	s.Equal("channel-1", edit.Channel)
	s.Equal("message-1", edit.ID)
	s.Require().NotNil(edit.Components)
	s.Empty(*edit.Components)

	check.MessageID = ""
	s.Error(s.publisher.RemoveAffordance(s.ctx, &emergency.RemoveAffordanceInput{Check: check}))
}

func (s *PublisherTestSuite) TestNotify() {
	s.publisher.Notify(s.ctx, &emergency.NotifyInput{
		UserID:    "user-1",
		ChannelID: "channel-1",
		Level:     messaging.NoticeLevelWarning,
		Message:   "No Emergency D20 remaining.",
	})

	select {
	case sent := <-s.messenger.sentCh:
		s.Equal("⚠️ <@user-1> No Emergency D20 remaining.", sent.Content)
		s.Equal([]string{"user-1"}, sent.AllowedMentions.Users)
	case <-time.After(time.Second):
		s.Fail("notice was not delivered")
	}
}
