package vending

import (
	"fmt"
	"strings"
)

// Inventory holds the machine's items in display order with unique names.
type Inventory struct {
	items []*Item
	index map[string]*Item
}

// NewInventory builds an inventory, rejecting duplicate item names.
func NewInventory(items ...*Item) (*Inventory, error) {
	inventory := &Inventory{index: make(map[string]*Item, len(items))}
	for _, item := range items {
		if _, exists := inventory.index[item.Name()]; exists {
			return nil, fmt.Errorf("%w: duplicate item %s", ErrInvalidItemName, item.Name())
		}
		inventory.items = append(inventory.items, item)
		inventory.index[item.Name()] = item
	}
	return inventory, nil
}

// Find returns the item with the given name, or nil.
func (inventory *Inventory) Find(name string) *Item {
	return inventory.index[name]
}

// Items returns the items in display order.
func (inventory *Inventory) Items() []*Item {
	out := make([]*Item, len(inventory.items))
	copy(out, inventory.items)
	return out
}

// Load restocks an existing item or adds a new one. For an existing item
// priceCents is ignored; for a new item it is required and must be
// positive. Quantity must be positive in both cases.
func (inventory *Inventory) Load(name string, quantity int, priceCents int64) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidItemName)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("%w: must be positive", ErrInvalidQuantity)
	}
	if existing := inventory.index[trimmed]; existing != nil {
		existing.addStock(quantity)
		return fmt.Sprintf("Successfully added %d units to %s. New quantity: %d", quantity, existing.Name(), existing.Quantity()), nil
	}
	if priceCents <= 0 {
		return "", fmt.Errorf("%w: price required for new item", ErrInvalidPriceCents)
	}
	item, err := NewItem(trimmed, priceCents, quantity)
	if err != nil {
		return "", err
	}
	inventory.items = append(inventory.items, item)
	inventory.index[item.Name()] = item
	return fmt.Sprintf("Successfully added new item: %s - %s (%d units)", item.Name(), formatEuros(item.PriceCents()), quantity), nil
}
