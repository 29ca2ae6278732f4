package table

// TableError is a custom error type for table errors
type TableError string

// Error implements the error interface
func (e TableError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNotGM            TableError = "only a GM can do that"
	ErrNoActor          TableError = "user has no actor"
	ErrNotOwner         TableError = "user does not control that actor"
	ErrNoTokens         TableError = "actor has no tokens"
	ErrInvalidFormula   TableError = "invalid dice formula"
	ErrInvalidQuantity  TableError = "quantity cannot be negative"
	ErrNilConfig        TableError = "config cannot be nil"
	ErrEmptyItemName    TableError = "item name cannot be empty"
	ErrNilActorRepo     TableError = "actor repository cannot be nil"
	ErrNilTokenRepo     TableError = "token repository cannot be nil"
	ErrNilCheckRepo     TableError = "check repository cannot be nil"
	ErrNilDiceRoller    TableError = "dice roller cannot be nil"
	ErrNilClock         TableError = "clock cannot be nil"
	ErrNilUUIDGenerator TableError = "UUID generator cannot be nil"
)
