package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// DefaultItemName is used in notices when no item name is configured
const DefaultItemName = "Emergency D20"

// service implements the Service interface
type service struct {
	defaultTone MessageTone

	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	tone := ToneNeutral
	seed := time.Now().UnixNano()
	if config != nil {
		if config.DefaultTone != "" {
			tone = config.DefaultTone
		}
		if config.Seed != 0 {
			seed = config.Seed
		}
	}

	if tone != ToneNeutral && tone != ToneFunny {
		return nil, fmt.Errorf("unknown message tone %q", tone)
	}

	return &service{
		defaultTone: tone,
		rand:        rand.New(rand.NewSource(seed)),
	}, nil
}

// GetNoticeMessage returns the text of a user-visible notice
func (s *service) GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	itemName := input.ItemName
	if itemName == "" {
		itemName = DefaultItemName
	}

	var neutral string
	var funny []string
	level := NoticeLevelWarning

	switch input.Kind {
	case NoticeUnauthorized:
		neutral = "You do not control this actor."
		funny = []string{
			"Nice try, but that's not your character.",
			"Hands off! You don't control this actor.",
		}
	case NoticeExhausted:
		neutral = fmt.Sprintf("No %s remaining.", itemName)
		funny = []string{
			fmt.Sprintf("Your pockets are empty. No %s left!", itemName),
			fmt.Sprintf("Out of luck, literally. No %s remaining.", itemName),
		}
	case NoticeConsumeFailed:
		neutral = fmt.Sprintf("Could not consume an %s.", itemName)
		funny = []string{
			fmt.Sprintf("Someone beat you to it. Could not consume an %s.", itemName),
		}
	case NoticeCheckNotFound:
		neutral = fmt.Sprintf("%s: Could not find the check.", itemName)
	case NoticeActorNotFound:
		neutral = fmt.Sprintf("%s: Could not find actor.", itemName)
	case NoticeItemNotFound:
		neutral = fmt.Sprintf("%s: Could not find %s item.", itemName, itemName)
	case NoticeEvaluationFailure:
		neutral = fmt.Sprintf("%s: The reroll could not be evaluated.", itemName)
	case NoticePublishFailure:
		neutral = fmt.Sprintf("%s: The reroll could not be posted.", itemName)
	case NoticeRerollUsed:
		neutral = fmt.Sprintf("%s used!", itemName)
		funny = []string{
			fmt.Sprintf("%s used! The dice gods grant you a second chance.", itemName),
			fmt.Sprintf("%s used! Let's pretend that first roll never happened.", itemName),
		}
		level = NoticeLevelInfo
	default:
		return nil, fmt.Errorf("unknown notice kind %q", input.Kind)
	}

	return &GetNoticeMessageOutput{
		Message: s.pick(s.tone(input.Tone), neutral, funny),
		Level:   level,
	}, nil
}

// GetCheckHeadline returns a headline for a rendered check result
func (s *service) GetCheckHeadline(ctx context.Context, input *GetCheckHeadlineInput) (*GetCheckHeadlineOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	speaker := input.SpeakerName
	if speaker == "" {
		speaker = "Someone"
	}

	var neutral string
	var funny []string

	switch {
	case input.IsEmergency:
		neutral = fmt.Sprintf("%s rerolls!", speaker)
		funny = []string{
			fmt.Sprintf("%s reaches for the emergency dice!", speaker),
			fmt.Sprintf("%s demands a do-over!", speaker),
		}
	case input.NaturalD20 == 20:
		neutral = fmt.Sprintf("%s rolls a natural 20!", speaker)
		funny = []string{
			fmt.Sprintf("NAT 20! %s is unstoppable!", speaker),
			fmt.Sprintf("%s rolls a natural 20. Somebody write this down!", speaker),
		}
	case input.NaturalD20 == 1:
		neutral = fmt.Sprintf("%s rolls a natural 1.", speaker)
		funny = []string{
			fmt.Sprintf("Oof. %s rolls a natural 1.", speaker),
			fmt.Sprintf("%s rolls a 1. Maybe it's time for that emergency die?", speaker),
		}
	default:
		neutral = fmt.Sprintf("%s rolls", speaker)
	}

	return &GetCheckHeadlineOutput{
		Title: s.pick(s.tone(input.Tone), neutral, funny),
	}, nil
}

func (s *service) tone(requested MessageTone) MessageTone {
	if requested == "" {
		return s.defaultTone
	}
	return requested
}

// pick returns the neutral wording unless a funny variant is requested and available
func (s *service) pick(tone MessageTone, neutral string, funny []string) string {
	if tone != ToneFunny || len(funny) == 0 {
		return neutral
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return funny[s.rand.Intn(len(funny))]
}
