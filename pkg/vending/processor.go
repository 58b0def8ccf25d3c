package vending

import "fmt"

// PaymentProcessor commits a validated sale. It is the only component that
// mutates inventory quantities, and it performs no validation of its own:
// sufficiency and change availability belong upstream.
type PaymentProcessor struct {
	calculator *ChangeCalculator
}

// NewPaymentProcessor builds a processor over the given calculator.
func NewPaymentProcessor(calculator *ChangeCalculator) *PaymentProcessor {
	return &PaymentProcessor{calculator: calculator}
}

// ProcessPayment absorbs the payment into a working copy of the balance,
// withdraws the change owed, and decrements the item's stock by one. It
// returns a confirmation message, the new balance, and the change given.
//
// Callers must have validated change availability first. A failed
// withdrawal here means the validate-then-commit contract was broken, which
// is a programming error, not a customer condition; it panics.
func (processor *PaymentProcessor) ProcessPayment(item *Item, payment Coins, balance Coins) (string, Coins, Coins) {
	changeOwed := payment.Total() - item.PriceCents()
	if changeOwed < 0 {
		changeOwed = 0
	}
	merged := balance.Merge(payment)
	changeGiven, newBalance, err := processor.calculator.MakeChange(merged, changeOwed)
	if err != nil {
		panic(fmt.Sprintf("payment processor invoked without change validation: %v", err))
	}
	item.decrementStock()
	return confirmPayment(item, changeGiven), newBalance, changeGiven
}

func confirmPayment(item *Item, changeGiven Coins) string {
	if changeGiven.Total() > 0 {
		return fmt.Sprintf("Thank you for your purchase of %s. Please collect your item and change: %s", item.Name(), changeGiven.Format())
	}
	return fmt.Sprintf("Thank you for your purchase of %s. Please collect your item.", item.Name())
}
