package emergency

import "github.com/KirkDiggler/emergency-d20/internal/models"

// HasUsesRemaining reports whether a resource item can still be spent.
// Items with neither a quantity nor a uses value count as unlimited.
func HasUsesRemaining(item *models.Item) bool {
	if item == nil {
		return false
	}

	pool := models.PoolOf(item)
	if pool.IsUnlimited() {
		return true
	}
	return pool.Remaining > 0
}
