package vending

import "fmt"

// ChangeCalculator draws exact change from a coin balance using a greedy
// largest-first scan, taking as many of each denomination as availability
// and the remaining amount allow. Greedy is not a general exact-change
// solver; it is correct for the accepted canonical coin set and must not be
// reused for arbitrary denomination systems.
type ChangeCalculator struct{}

// NewChangeCalculator builds a calculator.
func NewChangeCalculator() *ChangeCalculator {
	return &ChangeCalculator{}
}

// MakeChange withdraws exactly amount from balance. On success it returns
// the coins withdrawn and the balance after withdrawal. On failure it
// returns the input balance untouched alongside ErrChangeUnavailable; no
// partial withdrawal ever leaks to the caller. A zero amount succeeds
// trivially with no coins withdrawn.
func (calculator *ChangeCalculator) MakeChange(balance Coins, amount AmountCents) (Coins, Coins, error) {
	if amount < 0 {
		return nil, balance, fmt.Errorf("%w: negative change amount %d", ErrInvalidAmountCents, amount)
	}
	if amount == 0 {
		return Coins{}, balance, nil
	}
	remaining := amount
	working := balance.Clone()
	withdrawn := Coins{}
	for _, denomination := range acceptedDenominations {
		if remaining <= 0 {
			break
		}
		available := working[denomination]
		needed := int(remaining.Int64() / int64(denomination))
		used := available
		if needed < used {
			used = needed
		}
		if used == 0 {
			continue
		}
		withdrawn[denomination] = used
		if available == used {
			delete(working, denomination)
		} else {
			working[denomination] = available - used
		}
		remaining -= AmountCents(int64(denomination) * int64(used))
	}
	if remaining != 0 {
		return nil, balance, fmt.Errorf("%w: %d cents short of %d", ErrChangeUnavailable, remaining, amount)
	}
	return withdrawn, working, nil
}

// CanMakeExactChange reports whether MakeChange would succeed for the given
// balance and amount. The balance is never mutated.
func (calculator *ChangeCalculator) CanMakeExactChange(balance Coins, amount AmountCents) bool {
	_, _, err := calculator.MakeChange(balance, amount)
	return err == nil
}
