package cli

import (
	"fmt"
	"io"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// Display writes the machine's menus and status views.
type Display struct {
	out       io.Writer
	machine   *vending.VendingMachine
	formatter CurrencyFormatter
}

// NewDisplay wires a display over the machine.
func NewDisplay(out io.Writer, machine *vending.VendingMachine) *Display {
	return &Display{out: out, machine: machine}
}

// ShowWelcome prints the banner.
func (display *Display) ShowWelcome() {
	fmt.Fprintln(display.out, "=== Vending Machine CLI ===")
	fmt.Fprintln(display.out, "Welcome! What would you like to purchase through the Vending machine?")
	fmt.Fprintln(display.out)
}

// ShowMenu prints the option list and the choice prompt.
func (display *Display) ShowMenu() {
	fmt.Fprintln(display.out, "Choose an option:")
	fmt.Fprintln(display.out, "1. Display available items")
	fmt.Fprintln(display.out, "2. Purchase item")
	fmt.Fprintln(display.out, "3. Display current balance")
	fmt.Fprintln(display.out, "4. Display machine status")
	fmt.Fprintln(display.out, "5. Reload items")
	fmt.Fprintln(display.out, "6. Reload change")
	fmt.Fprintln(display.out, "q. Quit")
	fmt.Fprint(display.out, "Enter your choice: ")
}

// ShowAvailableItems prints the numbered item list.
func (display *Display) ShowAvailableItems() {
	fmt.Fprintln(display.out, "\n=== Available Items in the Vending Machine ===")
	for index, item := range display.machine.Items() {
		fmt.Fprintf(display.out, "%d. %s - %s (%d available)\n", index+1, item.Name(), display.formatter.FormatItemPrice(item), item.Quantity())
	}
}

// ShowCurrentBalance prints the coin float summary.
func (display *Display) ShowCurrentBalance() {
	fmt.Fprintln(display.out, "\n=== Current Balance ===")
	fmt.Fprintf(display.out, "Available change: %s\n", display.formatter.FormatAmount(display.machine.AvailableChange()))
	fmt.Fprintf(display.out, "Coins: %s\n", display.machine.BalanceInEnglish())
}

// ShowMachineStatus prints the coin float and the stock list.
func (display *Display) ShowMachineStatus() {
	fmt.Fprintln(display.out, "\n=== Machine Status ===")
	fmt.Fprintf(display.out, "Available change: %s\n", display.formatter.FormatAmount(display.machine.AvailableChange()))
	fmt.Fprintf(display.out, "Coins: %s\n", display.machine.BalanceInEnglish())
	fmt.Fprintln(display.out)
	fmt.Fprintln(display.out, "Items in stock:")
	for _, item := range display.machine.Items() {
		fmt.Fprintf(display.out, "  %s: %d units\n", item.Name(), item.Quantity())
	}
}

// ShowPaymentInstructions explains the coin-hash input format.
func (display *Display) ShowPaymentInstructions() {
	fmt.Fprintln(display.out, "Format: Enter payment as a hash of coin denominations in cents")
	fmt.Fprintln(display.out, "Example: {100 => 2, 50 => 1} means 2 one-euro coins and 1 fifty-cent coin")
	fmt.Fprintln(display.out, "Available denominations: 1, 2, 5, 10, 20, 50, 100, 200 cents")
}

// ShowGoodbye prints the exit message.
func (display *Display) ShowGoodbye() {
	fmt.Fprintln(display.out, "Goodbye!")
}

// ShowInvalidChoice prints the unknown-option message.
func (display *Display) ShowInvalidChoice() {
	fmt.Fprintln(display.out, "Invalid choice. Please try again.")
}
