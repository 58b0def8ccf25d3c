package vending

import (
	"fmt"
	"sort"
	"strings"
)

// Coins is a multiset of coins keyed by denomination. It represents both the
// machine's own balance and a customer's payment. Operations that change a
// Coins value return a fresh map, so rollback is "keep the old value".
type Coins map[Denomination]int

// NewCoins validates a raw coin map from the boundary. Every key must be an
// accepted denomination and every count strictly positive. Offending
// denominations are enumerated in the error, smallest first.
func NewCoins(raw map[int]int) (Coins, error) {
	var invalid []int
	for face := range raw {
		if !Denomination(face).Accepted() {
			invalid = append(invalid, face)
		}
	}
	if len(invalid) > 0 {
		sort.Ints(invalid)
		return nil, fmt.Errorf("%w in payment: %v", ErrInvalidDenomination, invalid)
	}
	coins := make(Coins, len(raw))
	for face, count := range raw {
		if count <= 0 {
			return nil, fmt.Errorf("%w: %d x %d", ErrInvalidCoinCount, count, face)
		}
		coins[Denomination(face)] = count
	}
	return coins, nil
}

// Total returns the summed value of all coins in cents.
func (coins Coins) Total() AmountCents {
	var total AmountCents
	for denomination, count := range coins {
		total += AmountCents(int64(denomination) * int64(count))
	}
	return total
}

// Count returns how many coins of a denomination are held.
func (coins Coins) Count(denomination Denomination) int {
	return coins[denomination]
}

// Clone returns an independent copy.
func (coins Coins) Clone() Coins {
	cloned := make(Coins, len(coins))
	for denomination, count := range coins {
		cloned[denomination] = count
	}
	return cloned
}

// Merge returns a new Coins value holding both operands' coins. Neither
// receiver nor argument is mutated.
func (coins Coins) Merge(other Coins) Coins {
	merged := coins.Clone()
	for denomination, count := range other {
		merged[denomination] += count
	}
	return merged
}

// Format renders the coins as "count x denomination" pairs, largest
// denomination first, zero counts omitted. Empty coins render as "".
func (coins Coins) Format() string {
	parts := make([]string, 0, len(coins))
	for _, denomination := range acceptedDenominations {
		if count := coins[denomination]; count > 0 {
			parts = append(parts, fmt.Sprintf("%d x %d", count, denomination))
		}
	}
	return strings.Join(parts, ", ")
}

// validate enforces the balance invariant: accepted denominations only,
// no negative counts.
func (coins Coins) validate() error {
	for denomination, count := range coins {
		if !denomination.Accepted() {
			return fmt.Errorf("%w: %d", ErrInvalidDenomination, denomination)
		}
		if count < 0 {
			return fmt.Errorf("%w: %d x %d", ErrInvalidCoinCount, count, denomination)
		}
	}
	return nil
}
