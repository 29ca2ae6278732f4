package models

import "fmt"

// PoolKind identifies which field backs a resource pool
type PoolKind string

const (
	// PoolKindUnlimited indicates the item carries neither a quantity nor a uses value
	PoolKindUnlimited PoolKind = "unlimited"

	// PoolKindQuantity indicates the pool is the item's quantity
	PoolKindQuantity PoolKind = "quantity"

	// PoolKindUses indicates the pool is the item's uses value
	PoolKindUses PoolKind = "uses"
)

// ResourcePool is the consumable count backing a resource item
type ResourcePool struct {
	Kind      PoolKind
	Remaining int
}

// PoolOf resolves the pool of an item. Quantity wins over uses value.
func PoolOf(item *Item) ResourcePool {
	switch {
	case item == nil:
		return ResourcePool{Kind: PoolKindUnlimited}
	case item.Quantity != nil:
		return ResourcePool{Kind: PoolKindQuantity, Remaining: *item.Quantity}
	case item.UsesValue != nil:
		return ResourcePool{Kind: PoolKindUses, Remaining: *item.UsesValue}
	default:
		return ResourcePool{Kind: PoolKindUnlimited}
	}
}

// IsUnlimited reports whether the pool has no backing count
func (p ResourcePool) IsUnlimited() bool {
	return p.Kind == PoolKindUnlimited
}

// Path returns the item field the pool is stored in, empty for unlimited pools
func (p ResourcePool) Path() string {
	switch p.Kind {
	case PoolKindQuantity:
		return ItemFieldQuantity
	case PoolKindUses:
		return ItemFieldUsesValue
	default:
		return ""
	}
}

func (p ResourcePool) String() string {
	if p.IsUnlimited() {
		return "unlimited"
	}
	return fmt.Sprintf("%s(%d)", p.Kind, p.Remaining)
}
