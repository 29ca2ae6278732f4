package emergency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/emergency-d20/internal/models"
	actorRepo "github.com/KirkDiggler/emergency-d20/internal/repositories/actor"
)

// Ledger spends uses of a resource item
type Ledger struct {
	actorRepo actorRepo.Repository
	logger    *slog.Logger
}

// NewLedger creates a ledger writing through the actor repository
func NewLedger(repo actorRepo.Repository, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		actorRepo: repo,
		logger:    logger,
	}
}

// Consume decrements the item's pool by one with a single partial update.
// It returns false without writing when the pool is already empty, and true
// without writing when the item is unlimited.
//
// The count checked here is the one the item was fetched with; a concurrent
// Consume on the same item can pass the same check before either update lands.
func (l *Ledger) Consume(ctx context.Context, item *models.Item) (bool, error) {
	if item == nil {
		return false, nil
	}

	pool := models.PoolOf(item)
	l.logger.Debug("consuming resource", "item_id", item.ID, "pool", pool.String())

	if pool.IsUnlimited() {
		l.logger.Debug("item has no quantity or uses, treating as unlimited", "item_id", item.ID)
		return true, nil
	}

	if pool.Remaining <= 0 {
		return false, nil
	}

	err := l.actorRepo.UpdateItem(ctx, &actorRepo.UpdateItemInput{
		ItemID:    item.ID,
		Increment: map[string]int64{pool.Path(): -1},
	})
	if err != nil {
		return false, fmt.Errorf("failed to decrement %s: %w", pool.Path(), err)
	}

	return true, nil
}
