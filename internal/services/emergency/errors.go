package emergency

import "fmt"

// EmergencyError is a custom error type for emergency reroll errors
type EmergencyError string

// Error implements the error interface
func (e EmergencyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrIneligible        EmergencyError = "check is not eligible for an emergency reroll"
	ErrUnauthorized      EmergencyError = "user does not control this actor"
	ErrUnresolvable      EmergencyError = "reference could not be resolved"
	ErrCheckNotFound     EmergencyError = "check not found"
	ErrActorNotFound     EmergencyError = "actor not found"
	ErrItemNotFound      EmergencyError = "emergency reroll item not found"
	ErrExhausted         EmergencyError = "no emergency reroll uses remaining"
	ErrEvaluationFailure EmergencyError = "emergency reroll could not be evaluated"
	ErrPublishFailure    EmergencyError = "emergency reroll could not be published"
	ErrNilConfig         EmergencyError = "config cannot be nil"
	ErrEmptyItemName     EmergencyError = "item name cannot be empty"
	ErrNilActorRepo      EmergencyError = "actor repository cannot be nil"
	ErrNilTokenRepo      EmergencyError = "token repository cannot be nil"
	ErrNilCheckRepo      EmergencyError = "check repository cannot be nil"
	ErrNilTable          EmergencyError = "table cannot be nil"
	ErrNilDiceRoller     EmergencyError = "dice roller cannot be nil"
	ErrNilMessaging      EmergencyError = "messaging service cannot be nil"
)

// RerollError reports the state a reroll stopped in
type RerollError struct {
	State RerollState
	Err   error
}

// Error implements the error interface
func (e *RerollError) Error() string {
	return fmt.Sprintf("emergency reroll stopped while %s: %v", e.State, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e *RerollError) Unwrap() error {
	return e.Err
}
