package models

// Item field paths that can be updated partially
const (
	ItemFieldName      = "name"
	ItemFieldQuantity  = "quantity"
	ItemFieldUsesValue = "uses.value"
)

// Item represents something carried by an actor
type Item struct {
	// ID is the unique identifier for the item
	ID string

	// ActorID is the ID of the actor carrying the item
	ActorID string

	// Name is the display name of the item
	Name string

	// Quantity is the generic quantity field, nil when absent or not numeric
	Quantity *int

	// UsesValue is the nested uses value field, nil when absent or not numeric
	UsesValue *int
}
