package discord

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	"github.com/KirkDiggler/emergency-d20/internal/services/emergency"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// ButtonEmergencyReroll prefixes the custom ID of every reroll button
const ButtonEmergencyReroll = "emergency_d20"

// Embed colors
const (
	colorCheck     = 0x00ff00
	colorCritical  = 0xffd700
	colorFumble    = 0x8b0000
	colorEmergency = 0xff8c00
	colorStatus    = 0x5865f2
	colorError     = 0xff0000
)

const (
	// maxCustomIDLength is the longest custom ID Discord accepts on a component
	maxCustomIDLength = 100

	// packedIDPrefix marks an ID packed from a canonical UUID
	packedIDPrefix = "~"
)

var (
	errInvalidAffordanceID = errors.New("invalid emergency reroll button ID")
	errAffordanceIDTooLong = errors.New("emergency reroll button ID is too long")
)

// EncodeAffordanceID packs the references of an affordance into a button custom ID.
// Canonical UUIDs are shortened to 22 base64 characters.
func EncodeAffordanceID(affordance *emergency.Affordance) (string, error) {
	if affordance == nil {
		return "", errInvalidAffordanceID
	}

	parts := []string{ButtonEmergencyReroll}
	for _, id := range []string{affordance.CheckID, affordance.ActorID, affordance.ItemID} {
		if id == "" || strings.Contains(id, ":") || strings.HasPrefix(id, packedIDPrefix) {
			return "", errInvalidAffordanceID
		}
		parts = append(parts, packID(id))
	}

	customID := strings.Join(parts, ":")
	if len(customID) > maxCustomIDLength {
		return "", fmt.Errorf("%w: %d characters", errAffordanceIDTooLong, len(customID))
	}
	return customID, nil
}

// ParseAffordanceID unpacks a button custom ID produced by EncodeAffordanceID
func ParseAffordanceID(customID string) (*emergency.Affordance, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 4 || parts[0] != ButtonEmergencyReroll {
		return nil, errInvalidAffordanceID
	}

	ids := make([]string, 0, 3)
	for _, part := range parts[1:] {
		id, err := unpackID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return &emergency.Affordance{
		CheckID: ids[0],
		ActorID: ids[1],
		ItemID:  ids[2],
	}, nil
}

func packID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return id
	}
	return packedIDPrefix + base64.RawURLEncoding.EncodeToString(parsed[:])
}

func unpackID(part string) (string, error) {
	if part == "" {
		return "", errInvalidAffordanceID
	}

	packed, ok := strings.CutPrefix(part, packedIDPrefix)
	if !ok {
		return part, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(packed)
	if err != nil {
		return "", errInvalidAffordanceID
	}
	parsed, err := uuid.FromBytes(raw)
	if err != nil {
		return "", errInvalidAffordanceID
	}
	return parsed.String(), nil
}

// affordanceComponents renders the reroll button, or nothing when there is no affordance
func affordanceComponents(affordance *emergency.Affordance, itemName string) ([]discordgo.MessageComponent, error) {
	if affordance == nil {
		return []discordgo.MessageComponent{}, nil
	}

	customID, err := EncodeAffordanceID(affordance)
	if err != nil {
		return nil, err
	}

	button := discordgo.Button{
		Label:    itemName,
		Style:    discordgo.DangerButton,
		CustomID: customID,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{button},
		},
	}, nil
}

// naturalD20 returns the face of the first d20 in the check, zero when there is none
func naturalD20(check *models.CheckResult) int {
	for _, term := range check.PrimaryRoll().Dice() {
		if term.Faces == 20 && len(term.Results) > 0 {
			return term.Results[0]
		}
	}
	return 0
}

// renderCheckEmbed renders a check result under the given headline
func renderCheckEmbed(check *models.CheckResult, title string) *discordgo.MessageEmbed {
	roll := check.PrimaryRoll()
	isEmergency := check.Flags.IsSet(emergency.FlagScope, emergency.FlagIsEmergency)

	color := colorCheck
	switch natural := naturalD20(check); {
	case isEmergency:
		color = colorEmergency
	case natural == 20:
		color = colorCritical
	case natural == 1:
		color = colorFumble
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: check.Flavor,
		Color:       color,
	}
	if !check.CreatedAt.IsZero() {
		embed.Timestamp = check.CreatedAt.Format(time.RFC3339)
	}
	if roll == nil {
		return embed
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "Formula",
			Value:  roll.Formula,
			Inline: true,
		},
		{
			Name:   "Dice",
			Value:  describeTerms(roll),
			Inline: true,
		},
		{
			Name:   "Total",
			Value:  fmt.Sprintf("**%d**", roll.Total),
			Inline: true,
		},
	}

	if isEmergency {
		if source := check.Flags.Get(emergency.FlagScope, emergency.FlagSourceCheckID); source != "" {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: "Rerolled from check " + source,
			}
		}
	}

	return embed
}

// describeTerms renders each term like "d20 [12] + 3"
func describeTerms(roll *models.Roll) string {
	var b strings.Builder
	for i, term := range roll.Terms {
		if i > 0 || term.Operator == "-" {
			b.WriteString(" " + term.Operator + " ")
		}
		if term.Kind == models.TermKindNumeric {
			b.WriteString(strconv.Itoa(term.Number))
			continue
		}

		results := make([]string, len(term.Results))
		for j, result := range term.Results {
			results[j] = strconv.Itoa(result)
		}
		fmt.Fprintf(&b, "%dd%d [%s]", term.Count, term.Faces, strings.Join(results, ", "))
	}

	if b.Len() == 0 {
		return "-"
	}
	return strings.TrimSpace(b.String())
}

// renderStatusEmbed renders a user's resource status
func renderStatusEmbed(actor *models.Actor, item *models.Item, selected []*models.Token, itemName string) *discordgo.MessageEmbed {
	remaining := "none"
	if item != nil {
		pool := models.PoolOf(item)
		if pool.IsUnlimited() {
			remaining = "unlimited"
		} else {
			remaining = strconv.Itoa(pool.Remaining)
		}
	}

	tokens := "none"
	if len(selected) > 0 {
		names := make([]string, len(selected))
		for i, token := range selected {
			names[i] = token.Name
		}
		tokens = strings.Join(names, ", ")
	}

	return &discordgo.MessageEmbed{
		Title: actor.Name,
		Color: colorStatus,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   itemName,
				Value:  remaining,
				Inline: true,
			},
			{
				Name:   "Selected tokens",
				Value:  tokens,
				Inline: true,
			},
		},
	}
}
