package vending

import (
	"fmt"
	"strings"
)

// AmountCents is an integer currency amount in cents.
type AmountCents int64

// Int64 returns the raw cents value.
func (amount AmountCents) Int64() int64 {
	return int64(amount)
}

// Denomination is a coin face value in cents, drawn from the closed set the
// machine accepts.
type Denomination int

// acceptedDenominations lists the coin faces the machine accepts, largest
// first. The greedy change calculator relies on this being a canonical coin
// system, where largest-first withdrawal always finds exact change when one
// exists.
var acceptedDenominations = []Denomination{200, 100, 50, 20, 10, 5, 2, 1}

// NewDenomination validates a raw coin face value.
func NewDenomination(raw int) (Denomination, error) {
	candidate := Denomination(raw)
	if !candidate.Accepted() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDenomination, raw)
	}
	return candidate, nil
}

// Accepted reports whether the denomination belongs to the accepted set.
func (denomination Denomination) Accepted() bool {
	for _, accepted := range acceptedDenominations {
		if denomination == accepted {
			return true
		}
	}
	return false
}

// AcceptedDenominations returns the accepted coin faces, largest first.
func AcceptedDenominations() []Denomination {
	out := make([]Denomination, len(acceptedDenominations))
	copy(out, acceptedDenominations)
	return out
}

// Item is a stocked product: unique name, unit price in cents, and remaining
// quantity. Quantity is decremented only by PaymentProcessor, exactly once
// per committed sale.
type Item struct {
	name       string
	priceCents AmountCents
	quantity   int
}

// NewItem validates and builds an inventory item.
func NewItem(name string, priceCents int64, quantity int) (*Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidItemName)
	}
	if priceCents <= 0 {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidPriceCents)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: must not be negative", ErrInvalidQuantity)
	}
	return &Item{name: trimmed, priceCents: AmountCents(priceCents), quantity: quantity}, nil
}

// Name returns the item's unique name.
func (item *Item) Name() string {
	return item.name
}

// PriceCents returns the unit price in cents.
func (item *Item) PriceCents() AmountCents {
	return item.priceCents
}

// Quantity returns the remaining stock.
func (item *Item) Quantity() int {
	return item.quantity
}

// Available reports whether the item can be sold.
func (item *Item) Available() bool {
	return item != nil && item.quantity > 0
}

func (item *Item) addStock(quantity int) {
	item.quantity += quantity
}

func (item *Item) decrementStock() {
	item.quantity--
}
