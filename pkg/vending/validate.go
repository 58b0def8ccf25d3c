package vending

import (
	"fmt"
	"sort"
)

// PaymentValidator is a stateless guard over purchase inputs.
type PaymentValidator struct{}

// NewPaymentValidator builds a validator.
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// ValidatePurchase checks that the item is sellable and that every coin in
// the raw payment is an accepted denomination. Offenders are enumerated in
// the error.
func (validator *PaymentValidator) ValidatePurchase(item *Item, payment map[int]int) error {
	if !item.Available() {
		return ErrItemUnavailable
	}
	var invalid []int
	for face := range payment {
		if !Denomination(face).Accepted() {
			invalid = append(invalid, face)
		}
	}
	if len(invalid) > 0 {
		sort.Ints(invalid)
		return fmt.Errorf("%w in payment: %v", ErrInvalidDenomination, invalid)
	}
	return nil
}

// ValidatePaymentAmount checks that the total paid covers the item's price.
// Exact payment and overpayment both pass.
func (validator *PaymentValidator) ValidatePaymentAmount(item *Item, totalPaid AmountCents) error {
	if totalPaid < item.PriceCents() {
		remaining := item.PriceCents() - totalPaid
		return fmt.Errorf("%w: %d more cents needed for %s", ErrInsufficientFunds, remaining, item.Name())
	}
	return nil
}

// ChangeValidator checks that a sale could return exact change, against the
// hypothetical balance that would exist after absorbing the payment. The
// real balance is never touched.
type ChangeValidator struct {
	calculator *ChangeCalculator
}

// NewChangeValidator builds a validator over the given calculator.
func NewChangeValidator(calculator *ChangeCalculator) *ChangeValidator {
	return &ChangeValidator{calculator: calculator}
}

// ValidateChangeAvailability projects the payment onto the balance and
// verifies the change owed is constructible from the projection. No change
// owed is a trivial success.
func (validator *ChangeValidator) ValidateChangeAvailability(payment Coins, itemPrice AmountCents, balance Coins) error {
	changeOwed := payment.Total() - itemPrice
	if changeOwed <= 0 {
		return nil
	}
	projected := balance.Merge(payment)
	if !validator.calculator.CanMakeExactChange(projected, changeOwed) {
		return fmt.Errorf("%w: cannot return %d cents", ErrChangeUnavailable, changeOwed)
	}
	return nil
}
