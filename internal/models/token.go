package models

// Token represents an actor's piece placed on the table
type Token struct {
	// ID is the unique identifier for the token
	ID string

	// ActorID is the ID of the actor the token represents
	ActorID string

	// Name is the display name of the token
	Name string
}
