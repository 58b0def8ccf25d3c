package vending

import (
	"errors"
	"strings"
	"testing"
)

type recorderLogger struct {
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(entry OperationLog) {
	logger.entries = append(logger.entries, entry)
}

func mustMachine(test *testing.T, balance Coins, options ...MachineOption) *VendingMachine {
	test.Helper()
	inventory, err := NewInventory(
		mustItem(test, "Coke", 150, 5),
		mustItem(test, "Chips", 100, 3),
		mustItem(test, "Water", 125, 0),
	)
	if err != nil {
		test.Fatalf("inventory init failed: %v", err)
	}
	machine, err := NewVendingMachine(inventory, balance, options...)
	if err != nil {
		test.Fatalf("machine init failed: %v", err)
	}
	return machine
}

func TestNewVendingMachineRejectsBadConfig(test *testing.T) {
	test.Parallel()
	if _, err := NewVendingMachine(nil, Coins{}); !errors.Is(err, ErrInvalidMachineConfig) {
		test.Fatalf("expected ErrInvalidMachineConfig, got %v", err)
	}
	inventory, err := NewInventory()
	if err != nil {
		test.Fatalf("inventory init failed: %v", err)
	}
	if _, err := NewVendingMachine(inventory, Coins{25: 1}); !errors.Is(err, ErrInvalidMachineConfig) {
		test.Fatalf("expected ErrInvalidMachineConfig for a bad float, got %v", err)
	}
}

func TestStartPurchase(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 2})
	message, err := machine.StartPurchase("Coke")
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if message != "Please insert 150 cents for Coke" {
		test.Fatalf("unexpected prompt: %q", message)
	}
	if _, err := machine.StartPurchase("Coke"); !errors.Is(err, ErrSessionAlreadyActive) {
		test.Fatalf("expected ErrSessionAlreadyActive, got %v", err)
	}
}

func TestStartPurchaseFailures(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	if _, err := machine.StartPurchase("Beer"); !errors.Is(err, ErrItemNotFound) {
		test.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := machine.StartPurchase("Water"); !errors.Is(err, ErrItemUnavailable) {
		test.Fatalf("expected ErrItemUnavailable for a sold-out item, got %v", err)
	}
}

func TestInsertPaymentWithoutSession(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	if _, err := machine.InsertPayment(map[int]int{50: 1}); !errors.Is(err, ErrNoActiveSession) {
		test.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestPurchaseWithExactPayment(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 2})
	balanceBefore := machine.AvailableChange()
	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err := machine.InsertPayment(map[int]int{100: 1, 50: 1})
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(message, "change") {
		test.Fatalf("exact payment must not mention change: %q", message)
	}
	if machine.inventory.Find("Coke").Quantity() != 4 {
		test.Fatalf("quantity must decrease by exactly 1")
	}
	if machine.AvailableChange() != balanceBefore+150 {
		test.Fatalf("conservation broken: expected %d, got %d", balanceBefore+150, machine.AvailableChange())
	}
}

func TestPurchaseWithOverpaymentGivesChange(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 1})
	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err := machine.InsertPayment(map[int]int{200: 1})
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "change: 1 x 50") {
		test.Fatalf("expected change of 1 x 50, got %q", message)
	}
	if machine.inventory.Find("Coke").Quantity() != 4 {
		test.Fatalf("quantity must decrease by exactly 1")
	}
	if machine.AvailableChange() != 50+200-50 {
		test.Fatalf("conservation broken, balance %d", machine.AvailableChange())
	}
}

func TestIncrementalPayment(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err := machine.InsertPayment(map[int]int{50: 1})
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if message != "Please insert 100 more cents" {
		test.Fatalf("unexpected prompt: %q", message)
	}
	message, err = machine.InsertPayment(map[int]int{100: 1})
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "Thank you for your purchase of Coke") {
		test.Fatalf("expected completion, got %q", message)
	}
}

func TestInvalidDenominationKeepsSessionActive(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	if _, err := machine.StartPurchase("Chips"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if _, err := machine.InsertPayment(map[int]int{25: 4}); !errors.Is(err, ErrInvalidDenomination) {
		test.Fatalf("expected ErrInvalidDenomination, got %v", err)
	}
	// The customer retries with corrected coins on the same session.
	message, err := machine.InsertPayment(map[int]int{100: 1})
	if err != nil {
		test.Fatalf("session was destroyed by the invalid payment: %v", err)
	}
	if !strings.Contains(message, "Thank you for your purchase of Chips") {
		test.Fatalf("expected completion, got %q", message)
	}
}

func TestAutoCancelWhenChangeUnavailable(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{200: 1})
	balanceBefore := machine.AvailableChange()
	if _, err := machine.StartPurchase("Chips"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err := machine.InsertPayment(map[int]int{200: 1})
	if err != nil {
		test.Fatalf("auto-cancel is a designed recovery, not an error: %v", err)
	}
	if !strings.Contains(message, "Payment refunded: 1 x 200") {
		test.Fatalf("expected itemized refund, got %q", message)
	}
	if !strings.Contains(message, "exact payment") {
		test.Fatalf("expected retry instruction, got %q", message)
	}
	if machine.AvailableChange() != balanceBefore {
		test.Fatalf("refund must leave the balance unchanged, got %d", machine.AvailableChange())
	}
	if machine.inventory.Find("Chips").Quantity() != 3 {
		test.Fatalf("auto-cancel must not decrement stock")
	}
	// The slot is free again.
	if _, err := machine.StartPurchase("Chips"); err != nil {
		test.Fatalf("expected a fresh session after auto-cancel: %v", err)
	}
}

func TestCancelPurchase(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 4})
	balanceBefore := machine.AvailableChange()

	if _, err := machine.CancelPurchase(); !errors.Is(err, ErrNoActiveSession) {
		test.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err := machine.CancelPurchase()
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if message != "Purchase cancelled. No money to return." {
		test.Fatalf("unexpected message: %q", message)
	}

	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if _, err := machine.InsertPayment(map[int]int{20: 2, 10: 1}); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	message, err = machine.CancelPurchase()
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "Money returned: 2 x 20, 1 x 10") {
		test.Fatalf("expected itemized refund, got %q", message)
	}
	if machine.AvailableChange() != balanceBefore {
		test.Fatalf("cancel must leave the balance exactly as before the session")
	}
}

func TestProjectionsIgnoreSessionState(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{100: 1, 50: 1})
	stockBefore := machine.DisplayStock()
	balanceBefore := machine.AvailableChange()
	englishBefore := machine.BalanceInEnglish()

	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if _, err := machine.InsertPayment(map[int]int{50: 1}); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}

	if machine.AvailableChange() != balanceBefore {
		test.Fatalf("in-flight coins must not appear in the balance projection")
	}
	if machine.BalanceInEnglish() != englishBefore {
		test.Fatalf("in-flight coins must not appear in the coin list")
	}
	if machine.DisplayStock() != stockBefore {
		test.Fatalf("an open session must not change the stock display")
	}
}

func TestDisplayStock(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	stock := machine.DisplayStock()
	if !strings.Contains(stock, "Coke: 5 units @ €1.50") {
		test.Fatalf("unexpected stock line: %q", stock)
	}
	if !strings.Contains(stock, "Water: 0 units @ €1.25") {
		test.Fatalf("sold-out items still appear in stock: %q", stock)
	}

	empty, err := NewInventory()
	if err != nil {
		test.Fatalf("inventory init failed: %v", err)
	}
	emptyMachine, err := NewVendingMachine(empty, Coins{})
	if err != nil {
		test.Fatalf("machine init failed: %v", err)
	}
	if emptyMachine.DisplayStock() != "No items available" {
		test.Fatalf("unexpected empty-stock message: %q", emptyMachine.DisplayStock())
	}
}

func TestBalanceInEnglish(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{200: 1, 2: 3})
	if got := machine.BalanceInEnglish(); got != "1 x 200, 3 x 2" {
		test.Fatalf("unexpected coin list: %q", got)
	}
	emptyMachine := mustMachine(test, Coins{})
	if got := emptyMachine.BalanceInEnglish(); got != "No coins available" {
		test.Fatalf("unexpected empty-balance message: %q", got)
	}
}

func TestLoadItem(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{})
	message, err := machine.LoadItem("Coke", 3, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "New quantity: 8") {
		test.Fatalf("unexpected message: %q", message)
	}

	message, err = machine.LoadItem("Juice", 4, 175)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "Juice - €1.75 (4 units)") {
		test.Fatalf("unexpected message: %q", message)
	}
	if machine.inventory.Find("Juice") == nil {
		test.Fatalf("new item missing from inventory")
	}

	if _, err := machine.LoadItem("Tea", 2, 0); !errors.Is(err, ErrInvalidPriceCents) {
		test.Fatalf("expected price-required error, got %v", err)
	}
	if _, err := machine.LoadItem("Coke", 0, 0); !errors.Is(err, ErrInvalidQuantity) {
		test.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := machine.LoadItem("  ", 1, 100); !errors.Is(err, ErrInvalidItemName) {
		test.Fatalf("expected ErrInvalidItemName, got %v", err)
	}
}

func TestReloadChange(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 1})
	message, err := machine.ReloadChange(map[int]int{20: 5, 10: 2})
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(message, "Successfully added coins: 5 x 20, 2 x 10") {
		test.Fatalf("unexpected message: %q", message)
	}
	if !strings.Contains(message, "Total balance: €1.70") {
		test.Fatalf("unexpected total: %q", message)
	}
	if machine.AvailableChange() != 170 {
		test.Fatalf("expected 170 cents, got %d", machine.AvailableChange())
	}
}

func TestReloadChangeRejectsInvalidDenomination(test *testing.T) {
	test.Parallel()
	machine := mustMachine(test, Coins{50: 1})
	if _, err := machine.ReloadChange(map[int]int{25: 1}); !errors.Is(err, ErrInvalidDenomination) {
		test.Fatalf("expected ErrInvalidDenomination, got %v", err)
	}
	if machine.AvailableChange() != 50 {
		test.Fatalf("rejected reload must leave the balance unchanged")
	}
	if _, err := machine.ReloadChange(map[int]int{}); !errors.Is(err, ErrInvalidCoinCount) {
		test.Fatalf("expected ErrInvalidCoinCount for an empty reload, got %v", err)
	}
}

func TestMachineLogsOperations(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	machine := mustMachine(test, Coins{50: 1}, WithOperationLogger(logger))
	if _, err := machine.StartPurchase("Coke"); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if _, err := machine.InsertPayment(map[int]int{200: 1}); err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	operations := make([]string, 0, len(logger.entries))
	for _, entry := range logger.entries {
		operations = append(operations, entry.Operation)
		if entry.Status != operationStatusOK {
			test.Fatalf("expected ok status for %s, got %+v", entry.Operation, entry)
		}
	}
	want := []string{operationStartPurchase, operationInsertPayment, operationPurchase}
	if len(operations) != len(want) {
		test.Fatalf("expected operations %v, got %v", want, operations)
	}
	for index := range want {
		if operations[index] != want[index] {
			test.Fatalf("expected operations %v, got %v", want, operations)
		}
	}
	purchase := logger.entries[2]
	if purchase.Amount != 200 || purchase.Change != 50 || purchase.Item != "Coke" {
		test.Fatalf("unexpected purchase log entry: %+v", purchase)
	}
}

func TestMachineLogsErrorStatus(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	machine := mustMachine(test, Coins{}, WithOperationLogger(logger))
	if _, err := machine.StartPurchase("Beer"); err == nil {
		test.Fatalf("expected error")
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	entry := logger.entries[0]
	if entry.Status != operationStatusError || entry.Error == nil {
		test.Fatalf("expected error log entry, got %+v", entry)
	}
}
