package vending

import (
	"strings"
	"testing"
)

func TestProcessPaymentExactAmount(t *testing.T) {
	t.Parallel()
	processor := NewPaymentProcessor(NewChangeCalculator())
	item := mustItem(t, "Coke", 150, 5)
	balance := Coins{50: 2}
	message, newBalance, changeGiven := processor.ProcessPayment(item, Coins{100: 1, 50: 1}, balance)
	if strings.Contains(message, "change") {
		t.Fatalf("exact payment must not mention change: %q", message)
	}
	if !strings.Contains(message, "Coke") {
		t.Fatalf("confirmation must name the item: %q", message)
	}
	if item.Quantity() != 4 {
		t.Fatalf("expected quantity 4, got %d", item.Quantity())
	}
	if changeGiven.Total() != 0 {
		t.Fatalf("expected no change, got %v", changeGiven)
	}
	if newBalance.Total() != 250 {
		t.Fatalf("expected new balance 250, got %d", newBalance.Total())
	}
}

func TestProcessPaymentWithChange(t *testing.T) {
	t.Parallel()
	processor := NewPaymentProcessor(NewChangeCalculator())
	item := mustItem(t, "Coke", 150, 5)
	balance := Coins{50: 1, 20: 2}
	message, newBalance, changeGiven := processor.ProcessPayment(item, Coins{200: 1}, balance)
	if !strings.Contains(message, "change: 1 x 50") {
		t.Fatalf("expected change clause listing 1 x 50, got %q", message)
	}
	if changeGiven.Count(50) != 1 || changeGiven.Total() != 50 {
		t.Fatalf("expected change {50:1}, got %v", changeGiven)
	}
	if item.Quantity() != 4 {
		t.Fatalf("expected quantity 4, got %d", item.Quantity())
	}
	wantBalance := 90 + 200 - 50
	if newBalance.Total() != AmountCents(wantBalance) {
		t.Fatalf("conservation broken: expected %d, got %d", wantBalance, newBalance.Total())
	}
}

func TestProcessPaymentLeavesInputBalanceUntouched(t *testing.T) {
	t.Parallel()
	processor := NewPaymentProcessor(NewChangeCalculator())
	item := mustItem(t, "Coke", 150, 5)
	balance := Coins{50: 1}
	_, _, _ = processor.ProcessPayment(item, Coins{200: 1}, balance)
	if balance.Total() != 50 || balance.Count(50) != 1 {
		t.Fatalf("commit mutated the caller's balance value: %v", balance)
	}
}

func TestProcessPaymentWithoutValidationPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when change cannot be withdrawn")
		}
	}()
	processor := NewPaymentProcessor(NewChangeCalculator())
	item := mustItem(t, "Chips", 100, 3)
	processor.ProcessPayment(item, Coins{200: 1}, Coins{})
}
