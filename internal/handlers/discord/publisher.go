package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/KirkDiggler/emergency-d20/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// ChannelMessenger is the part of the Discord session used to post and edit messages
type ChannelMessenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// PublisherConfig holds configuration for the publisher
type PublisherConfig struct {
	Messenger    ChannelMessenger
	TableService table.Service
	Messaging    messaging.Service
	Logger       *slog.Logger
}

// Publisher posts emergency rerolls to Discord channels
type Publisher struct {
	messenger    ChannelMessenger
	tableService table.Service
	messaging    messaging.Service
	logger       *slog.Logger
}

// NewPublisher creates a publisher
func NewPublisher(cfg *PublisherConfig) (*Publisher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.TableService == nil {
		return nil, errors.New("table service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		messenger:    cfg.Messenger,
		tableService: cfg.TableService,
		messaging:    cfg.Messaging,
		logger:       logger.With("component", "publisher"),
	}, nil
}

// PublishCheck records a new check and posts it to its channel. Published
// rerolls never carry a reroll button.
func (p *Publisher) PublishCheck(ctx context.Context, input *emergency.PublishCheckInput) (*models.CheckResult, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	check, err := p.tableService.RecordCheck(ctx, &table.RecordCheckInput{
		ChannelID: input.ChannelID,
		AuthorID:  input.AuthorID,
		Speaker:   input.Speaker,
		Flavor:    input.Flavor,
		Roll:      input.Roll,
		Flags:     input.Flags,
	})
	if err != nil {
		return nil, err
	}

	headline, err := p.messaging.GetCheckHeadline(ctx, &messaging.GetCheckHeadlineInput{
		SpeakerName: check.Speaker.Alias,
		NaturalD20:  naturalD20(check),
		IsEmergency: check.Flags.IsSet(emergency.FlagScope, emergency.FlagIsEmergency),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render headline: %w", err)
	}

	msg, err := p.messenger.ChannelMessageSendComplex(check.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{renderCheckEmbed(check, headline.Title)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send check message: %w", err)
	}

	check.MessageID = msg.ID
	err = p.tableService.AttachMessage(ctx, &table.AttachMessageInput{
		CheckID:   check.ID,
		MessageID: msg.ID,
	})
	if err != nil {
		// The message is already visible
		p.logger.Warn("could not link check to its message", "check_id", check.ID, "message_id", msg.ID, "error", err)
	}

	return check, nil
}

// RemoveAffordance clears the components of the message rendering a check
func (p *Publisher) RemoveAffordance(ctx context.Context, input *emergency.RemoveAffordanceInput) error {
	if input == nil || input.Check == nil {
		return errors.New("input and check cannot be nil")
	}
	if input.Check.MessageID == "" {
		return fmt.Errorf("check %s has no message", input.Check.ID)
	}

	components := []discordgo.MessageComponent{}
	_, err := p.messenger.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    input.Check.ChannelID,
		ID:         input.Check.MessageID,
		Components: &components,
	})
	if err != nil {
		return fmt.Errorf("failed to edit check message: %w", err)
	}

	return nil
}

// Notify posts a notice mentioning the user. Delivery happens in the background.
func (p *Publisher) Notify(ctx context.Context, input *emergency.NotifyInput) {
	if input == nil || input.ChannelID == "" {
		p.logger.Warn("dropping notice without a channel")
		return
	}

	content := fmt.Sprintf("<@%s> %s", input.UserID, input.Message)
	if input.Level == messaging.NoticeLevelWarning {
		content = "⚠️ " + content
	}

	go func() {
		_, err := p.messenger.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
			Content: content,
			AllowedMentions: &discordgo.MessageAllowedMentions{
				Users: []string{input.UserID},
			},
		})
		if err != nil {
			p.logger.Error("could not deliver notice", "user_id", input.UserID, "channel_id", input.ChannelID, "error", err)
		}
	}()
}
