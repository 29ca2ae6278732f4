package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/KirkDiggler/emergency-d20/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	emergencyService emergency.Service
	tableService     table.Service
	messaging        messaging.Service
	logger           *slog.Logger
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord session, shared with the publisher
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ItemName is the resource item name shown on buttons and commands
	ItemName string

	// Services
	EmergencyService emergency.Service
	TableService     table.Service
	Messaging        messaging.Service

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.EmergencyService == nil {
		return nil, errors.New("emergency service cannot be nil")
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

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		emergencyService: cfg.EmergencyService,
		tableService:     cfg.TableService,
		messaging:        cfg.Messaging,
		logger:           logger.With("component", "bot"),
		config:           cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewE20Command(b.tableService, b.emergencyService, b.messaging, b.config.ItemName, b.logger)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register e20 command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Info("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, for one guild when a guild ID is set
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.applicationID()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction", "custom_id", i.MessageComponentData().CustomID, "error", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, ButtonEmergencyReroll+":") {
		return b.handleEmergencyRerollButton(s, i, customID)
	}

	return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
}

// handleEmergencyRerollButton runs the reroll referenced by the button. The
// outcome reaches the user through notices, so the click is only acknowledged.
func (b *Bot) handleEmergencyRerollButton(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	affordance, err := ParseAffordanceID(customID)
	if err != nil {
		return RespondWithError(s, i, "This button is no longer valid.")
	}

	if err := AcknowledgeComponent(s, i); err != nil {
		return fmt.Errorf("failed to acknowledge button: %w", err)
	}

	userID, _ := interactionUser(i)
	_, err = b.emergencyService.UseEmergencyReroll(context.Background(), &emergency.UseEmergencyRerollInput{
		CheckID:   affordance.CheckID,
		ActorID:   affordance.ActorID,
		ItemID:    affordance.ItemID,
		InvokerID: userID,
		ChannelID: i.ChannelID,
	})
	if err != nil {
		var rerollErr *emergency.RerollError
		if errors.As(err, &rerollErr) && rerollErr.State != emergency.StateRolling && rerollErr.State != emergency.StatePublishing {
			b.logger.Info("emergency reroll rejected", "check_id", affordance.CheckID, "user_id", userID, "state", rerollErr.State, "reason", rerollErr.Err)
			return nil
		}
		return err
	}

	return nil
}
