package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

const cancelCommand = "cancel"

// PurchaseFlow drives one interactive purchase: item selection, session
// start, and the insert-until-complete payment loop.
type PurchaseFlow struct {
	out     io.Writer
	machine *vending.VendingMachine
	display *Display
	input   *InputReader
	parser  *PaymentParser
}

// NewPurchaseFlow wires the flow.
func NewPurchaseFlow(out io.Writer, machine *vending.VendingMachine, display *Display, input *InputReader, parser *PaymentParser) *PurchaseFlow {
	return &PurchaseFlow{out: out, machine: machine, display: display, input: input, parser: parser}
}

// Execute runs a full purchase interaction.
func (flow *PurchaseFlow) Execute() {
	fmt.Fprintln(flow.out, "\n=== Purchase Item ===")
	flow.display.ShowAvailableItems()

	item := flow.selectItem()
	if item == nil {
		return
	}

	fmt.Fprintln(flow.out, "Starting purchase session...")
	message, err := flow.machine.StartPurchase(item.Name())
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return
	}
	fmt.Fprintln(flow.out, message)

	flow.collectPaymentUntilComplete()
}

func (flow *PurchaseFlow) selectItem() *vending.Item {
	fmt.Fprint(flow.out, "Enter item number to purchase: ")
	line, ok := flow.input.ReadLine()
	if !ok {
		return nil
	}
	number, err := strconv.Atoi(line)
	items := flow.machine.Items()
	if err != nil || number < 1 || number > len(items) {
		fmt.Fprintln(flow.out, "Invalid item number.")
		return nil
	}
	item := items[number-1]
	fmt.Fprintf(flow.out, "Selected: %s\n\n", item.Name())
	return item
}

func (flow *PurchaseFlow) collectPaymentUntilComplete() {
	for {
		fmt.Fprintln(flow.out)
		flow.display.ShowPaymentInstructions()
		fmt.Fprint(flow.out, "Enter payment hash (or 'cancel' to cancel): ")
		line, ok := flow.input.ReadLine()
		if !ok {
			// Prompt closed mid-purchase; refund whatever accumulated.
			if message, err := flow.machine.CancelPurchase(); err == nil {
				fmt.Fprintln(flow.out, message)
			}
			return
		}
		if strings.EqualFold(line, cancelCommand) {
			message, err := flow.machine.CancelPurchase()
			if err != nil {
				fmt.Fprintln(flow.out, err)
				return
			}
			fmt.Fprintln(flow.out, message)
			return
		}
		if flow.processPaymentInput(line) {
			return
		}
	}
}

// processPaymentInput feeds one payment into the machine and reports whether
// the purchase is finished, either by completion or by auto-cancel.
func (flow *PurchaseFlow) processPaymentInput(line string) bool {
	payment, err := flow.parser.Parse(line)
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return false
	}
	message, err := flow.machine.InsertPayment(payment)
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return false
	}
	fmt.Fprintln(flow.out, message)
	return strings.Contains(message, "Thank you for your purchase") ||
		strings.Contains(message, "Payment refunded:")
}
