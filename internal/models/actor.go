package models

// Actor represents a character controlled by one or more users
type Actor struct {
	// ID is the unique identifier for the actor
	ID string

	// Name is the display name of the actor
	Name string

	// OwnerIDs contains the Discord user IDs allowed to control the actor
	OwnerIDs []string

	// Items contains the actor's items in insertion order
	Items []*Item
}

// IsOwnedBy reports whether the user controls the actor
func (a *Actor) IsOwnedBy(userID string) bool {
	if a == nil || userID == "" {
		return false
	}
	for _, ownerID := range a.OwnerIDs {
		if ownerID == userID {
			return true
		}
	}
	return false
}

// Item returns the actor's item with the given ID, or nil
func (a *Actor) Item(itemID string) *Item {
	if a == nil {
		return nil
	}
	for _, item := range a.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}
