package actor

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/emergency-d20/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/emergency-d20/internal/models"
)

// Repository defines the interface for actor and item persistence
type Repository interface {
	// SaveActor persists an actor's identity and owners, items are left untouched
	SaveActor(ctx context.Context, input *SaveActorInput) error

	// GetActor retrieves an actor by ID together with its items in insertion order
	GetActor(ctx context.Context, input *GetActorInput) (*models.Actor, error)

	// GetActorByOwner retrieves the first actor registered for a user
	GetActorByOwner(ctx context.Context, input *GetActorByOwnerInput) (*models.Actor, error)

	// AddItem appends an item to an actor
	AddItem(ctx context.Context, input *AddItemInput) error

	// UpdateItem applies a partial update to an item's fields
	UpdateItem(ctx context.Context, input *UpdateItemInput) error
}
