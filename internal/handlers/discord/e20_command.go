package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/KirkDiggler/emergency-d20/internal/services/messaging"
	"github.com/KirkDiggler/emergency-d20/internal/services/table"
	"github.com/bwmarrin/discordgo"
)

// Subcommands of /e20
const (
	subcommandRoll   = "roll"
	subcommandGrant  = "grant"
	subcommandSelect = "select"
	subcommandStatus = "status"
)

// E20Command handles the /e20 command
type E20Command struct {
	BaseCommand
	tableService     table.Service
	emergencyService emergency.Service
	messaging        messaging.Service
	itemName         string
	logger           *slog.Logger
}

// NewE20Command creates a new e20 command handler
func NewE20Command(tableService table.Service, emergencyService emergency.Service, messagingService messaging.Service, itemName string, logger *slog.Logger) *E20Command {
	if logger == nil {
		logger = slog.Default()
	}

	minQuantity := 0.0

	return &E20Command{
		BaseCommand: BaseCommand{
			Name:        "e20",
			Description: "Roll checks and manage emergency rerolls",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Roll a check",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "formula",
							Description: "Dice formula such as 1d20+5 (defaults to 1d20)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "flavor",
							Description: "What the check is for",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandGrant,
					Description: fmt.Sprintf("Set how many %s a player has (GM only)", itemName),
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Player receiving the item",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "New quantity",
							Required:    true,
							MinValue:    &minQuantity,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandSelect,
					Description: "Speak as a player's token, leave empty to clear",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Player whose token to select",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStatus,
					Description: fmt.Sprintf("Show your remaining %s", itemName),
				},
			},
		},
		tableService:     tableService,
		emergencyService: emergencyService,
		messaging:        messagingService,
		itemName:         itemName,
		logger:           logger.With("command", "e20"),
	}
}

// Handle processes a Discord interaction for the e20 command
func (c *E20Command) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID, username := interactionUser(i)
	subcommand := data.Options[0]
	options := optionMap(subcommand.Options)

	switch subcommand.Name {
	case subcommandRoll:
		return c.handleRoll(ctx, s, i, userID, username, options)
	case subcommandGrant:
		return c.handleGrant(ctx, s, i, userID, options)
	case subcommandSelect:
		return c.handleSelect(ctx, s, i, userID, options)
	case subcommandStatus:
		return c.handleStatus(ctx, s, i, userID)
	default:
		return errors.New("unknown subcommand")
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}
	return byName
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := options[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// handleRoll rolls a check and posts it with the reroll button when the roller may use one
func (c *E20Command) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	output, err := c.tableService.RollCheck(ctx, &table.RollCheckInput{
		UserID:    userID,
		UserName:  username,
		ChannelID: i.ChannelID,
		Formula:   stringOption(options, "formula"),
		Flavor:    stringOption(options, "flavor"),
	})
	if err != nil {
		if errors.Is(err, table.ErrInvalidFormula) {
			return RespondWithError(s, i, err.Error())
		}
		c.logger.Error("roll failed", "user_id", userID, "error", err)
		return RespondWithError(s, i, "Failed to roll the check.")
	}
	check := output.Check

	classification, err := c.emergencyService.Classify(ctx, &emergency.ClassifyInput{
		Check:    check,
		ViewerID: userID,
	})
	if err != nil {
		c.logger.Warn("could not classify check", "check_id", check.ID, "error", err)
		classification = &emergency.ClassifyOutput{}
	}

	headline, err := c.messaging.GetCheckHeadline(ctx, &messaging.GetCheckHeadlineInput{
		SpeakerName: check.Speaker.Alias,
		NaturalD20:  naturalD20(check),
	})
	if err != nil {
		return err
	}

	components, err := affordanceComponents(classification.Affordance, c.itemName)
	if err != nil {
		c.logger.Error("could not build emergency reroll button", "check_id", check.ID, "error", err)
		components = []discordgo.MessageComponent{}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{renderCheckEmbed(check, headline.Title)},
			Components: components,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to respond with check: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch check message: %w", err)
	}

	return c.tableService.AttachMessage(ctx, &table.AttachMessageInput{
		CheckID:   check.ID,
		MessageID: msg.ID,
	})
}

// handleGrant sets a player's resource quantity
func (c *E20Command) handleGrant(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	playerOpt, ok := options["player"]
	quantityOpt, hasQuantity := options["quantity"]
	if !ok || !hasQuantity {
		return RespondWithError(s, i, "A player and a quantity are required.")
	}
	player := playerOpt.UserValue(s)

	output, err := c.tableService.GrantResource(ctx, &table.GrantResourceInput{
		GMID:     userID,
		UserID:   player.ID,
		UserName: player.Username,
		Quantity: int(quantityOpt.IntValue()),
	})
	if err != nil {
		switch {
		case errors.Is(err, table.ErrNotGM):
			return RespondWithError(s, i, fmt.Sprintf("Only a GM can grant %s.", c.itemName))
		case errors.Is(err, table.ErrInvalidQuantity):
			return RespondWithError(s, i, err.Error())
		}
		c.logger.Error("grant failed", "gm_id", userID, "user_id", player.ID, "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to grant %s.", c.itemName))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s now has %d %s.", output.Actor.Name, *output.Item.Quantity, c.itemName))
}

// handleSelect replaces the user's token selection
func (c *E20Command) handleSelect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	var targetID string
	if opt, ok := options["player"]; ok {
		targetID = opt.UserValue(s).ID
	}

	output, err := c.tableService.SelectToken(ctx, &table.SelectTokenInput{
		UserID:       userID,
		TargetUserID: targetID,
	})
	if err != nil {
		switch {
		case errors.Is(err, table.ErrNoActor):
			return RespondWithError(s, i, "That player has no character yet.")
		case errors.Is(err, table.ErrNotOwner):
			return RespondWithError(s, i, "You do not control that character.")
		case errors.Is(err, table.ErrNoTokens):
			return RespondWithError(s, i, "That character has no token.")
		}
		c.logger.Error("select failed", "user_id", userID, "target_id", targetID, "error", err)
		return RespondWithError(s, i, "Failed to select a token.")
	}

	if len(output.Tokens) == 0 {
		return RespondWithEphemeralMessage(s, i, "Selection cleared.")
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Now speaking as %s.", output.Tokens[0].Name))
}

// handleStatus shows the user's remaining resource
func (c *E20Command) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.tableService.GetResourceStatus(ctx, &table.GetResourceStatusInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, table.ErrNoActor) {
			return RespondWithEphemeralMessage(s, i, "You have no character yet. Ask your GM for a grant.")
		}
		c.logger.Error("status failed", "user_id", userID, "error", err)
		return RespondWithError(s, i, "Failed to read your status.")
	}

	return RespondWithEphemeralEmbed(s, i, renderStatusEmbed(output.Actor, output.Item, output.Selected, c.itemName))
}
