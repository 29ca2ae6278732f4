package emergency

import "github.com/KirkDiggler/emergency-d20/internal/models"

// FindResourceItem returns the actor's first item named exactly itemName
func FindResourceItem(actor *models.Actor, itemName string) *models.Item {
	if actor == nil {
		return nil
	}
	for _, item := range actor.Items {
		if item.Name == itemName {
			return item
		}
	}
	return nil
}
