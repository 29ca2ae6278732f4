package models

import "time"

// Speaker identifies who produced a check
type Speaker struct {
	// ActorID is the ID of the speaking actor, if known
	ActorID string

	// TokenID is the ID of the speaking token, if any
	TokenID string

	// Alias is the display name used for the speaker
	Alias string
}

// Flags holds namespaced annotations on a check result, keyed by "scope.key"
type Flags map[string]string

// FlagKey builds the storage key of a namespaced flag
func FlagKey(scope, key string) string {
	return scope + "." + key
}

// Get returns the flag value, or an empty string when unset
func (f Flags) Get(scope, key string) string {
	if f == nil {
		return ""
	}
	return f[FlagKey(scope, key)]
}

// IsSet reports whether the flag holds "true"
func (f Flags) IsSet(scope, key string) bool {
	return f.Get(scope, key) == "true"
}

// CheckResult is a chat message produced by evaluating a check
type CheckResult struct {
	// ID is the unique identifier for the check
	ID string

	// ChannelID is the Discord channel the check was posted to
	ChannelID string

	// MessageID is the Discord message rendering the check, once posted
	MessageID string

	// AuthorID is the Discord user ID of the user who produced the check
	AuthorID string

	// Speaker identifies the actor the check was made for
	Speaker Speaker

	// Flavor is the label shown with the check
	Flavor string

	// Rolls contains the evaluated rolls, the first one being the primary check
	Rolls []*Roll

	// Flags are annotations added after creation, stored separately
	Flags Flags `json:"-"`

	// CreatedAt is when the check was produced
	CreatedAt time.Time
}

// PrimaryRoll returns the first roll of the check, or nil
func (c *CheckResult) PrimaryRoll() *Roll {
	if c == nil || len(c.Rolls) == 0 {
		return nil
	}
	return c.Rolls[0]
}
