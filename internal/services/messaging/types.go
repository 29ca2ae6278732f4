package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral returns the plain, fixed wording
	ToneNeutral MessageTone = "neutral"

	// ToneFunny picks a random humorous variant
	ToneFunny MessageTone = "funny"
)

// NoticeKind identifies which notice is being sent
type NoticeKind string

const (
	NoticeUnauthorized      NoticeKind = "unauthorized"
	NoticeExhausted         NoticeKind = "exhausted"
	NoticeConsumeFailed     NoticeKind = "consume_failed"
	NoticeCheckNotFound     NoticeKind = "check_not_found"
	NoticeActorNotFound     NoticeKind = "actor_not_found"
	NoticeItemNotFound      NoticeKind = "item_not_found"
	NoticeEvaluationFailure NoticeKind = "evaluation_failure"
	NoticePublishFailure    NoticeKind = "publish_failure"
	NoticeRerollUsed        NoticeKind = "reroll_used"
)

// NoticeLevel is the severity of a notice
type NoticeLevel string

const (
	NoticeLevelInfo    NoticeLevel = "info"
	NoticeLevelWarning NoticeLevel = "warning"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DefaultTone is used when a request does not ask for one
	DefaultTone MessageTone

	// Seed makes funny variants reproducible, zero uses the clock
	Seed int64
}

// GetNoticeMessageInput contains parameters for getting a notice message
type GetNoticeMessageInput struct {
	// Kind is the notice to render
	Kind NoticeKind

	// ItemName is the configured resource item name
	ItemName string

	// Tone overrides the default tone (optional)
	Tone MessageTone
}

// GetNoticeMessageOutput contains the rendered notice
type GetNoticeMessageOutput struct {
	Message string
	Level   NoticeLevel
}

// GetCheckHeadlineInput contains parameters for a check headline
type GetCheckHeadlineInput struct {
	// SpeakerName is the alias of the actor who rolled
	SpeakerName string

	// NaturalD20 is the face shown by the first d20, zero when there is none
	NaturalD20 int

	// IsEmergency indicates the check is an emergency reroll
	IsEmergency bool

	// Tone overrides the default tone (optional)
	Tone MessageTone
}

// GetCheckHeadlineOutput contains the rendered headline
type GetCheckHeadlineOutput struct {
	Title string
}
