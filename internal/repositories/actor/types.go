package actor

import "github.com/KirkDiggler/emergency-d20/internal/models"

type SaveActorInput struct {
	Actor *models.Actor
}

type GetActorInput struct {
	ActorID string
}

type GetActorByOwnerInput struct {
	OwnerID string
}

type AddItemInput struct {
	Item *models.Item
}

// UpdateItemInput describes a partial update keyed by field path
type UpdateItemInput struct {
	ItemID string

	// Set overwrites the given fields
	Set map[string]string

	// Increment adds a delta to the given numeric fields
	Increment map[string]int64
}

// actorRecord is the stored form of an actor, items live in their own keys
type actorRecord struct {
	ID       string
	Name     string
	OwnerIDs []string
}
