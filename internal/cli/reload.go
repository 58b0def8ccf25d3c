package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// ReloadFlow drives the operator-facing restock interactions.
type ReloadFlow struct {
	out     io.Writer
	machine *vending.VendingMachine
	input   *InputReader
	parser  *PaymentParser
}

// NewReloadFlow wires the flow.
func NewReloadFlow(out io.Writer, machine *vending.VendingMachine, input *InputReader, parser *PaymentParser) *ReloadFlow {
	return &ReloadFlow{out: out, machine: machine, input: input, parser: parser}
}

// LoadItems prompts for an item name and quantity, asking for a price only
// when the item is new, and routes the reload through the machine.
func (flow *ReloadFlow) LoadItems() {
	fmt.Fprintln(flow.out, "\n=== Reload or Add New Items ===")
	fmt.Fprintln(flow.out, "Current stock:")
	fmt.Fprintln(flow.out, flow.machine.DisplayStock())
	fmt.Fprintln(flow.out)

	fmt.Fprint(flow.out, "Enter item name: ")
	name, ok := flow.input.ReadLine()
	if !ok {
		return
	}

	fmt.Fprint(flow.out, "Enter quantity to add: ")
	quantityLine, ok := flow.input.ReadLine()
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(quantityLine)
	if err != nil {
		fmt.Fprintln(flow.out, "Invalid quantity. Please provide a positive number.")
		return
	}

	var priceCents int64
	if flow.itemExists(name) {
		priceCents = 0
	} else {
		fmt.Fprint(flow.out, "Enter price in cents for the new item: ")
		priceLine, ok := flow.input.ReadLine()
		if !ok {
			return
		}
		priceCents, err = strconv.ParseInt(priceLine, 10, 64)
		if err != nil {
			fmt.Fprintln(flow.out, "Invalid price. Price must be positive.")
			return
		}
	}

	message, err := flow.machine.LoadItem(name, quantity, priceCents)
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return
	}
	fmt.Fprintln(flow.out, message)
}

// ReloadCoins prompts for a coin hash and merges it into the machine float.
func (flow *ReloadFlow) ReloadCoins() {
	fmt.Fprintln(flow.out, "\n=== Reload Change ===")
	fmt.Fprintln(flow.out, "Format: {denomination => count}, e.g. {50 => 10, 20 => 5}")
	fmt.Fprint(flow.out, "Enter coins to add: ")
	line, ok := flow.input.ReadLine()
	if !ok {
		return
	}
	coins, err := flow.parser.Parse(line)
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return
	}
	message, err := flow.machine.ReloadChange(coins)
	if err != nil {
		fmt.Fprintln(flow.out, err)
		return
	}
	fmt.Fprintln(flow.out, message)
}

func (flow *ReloadFlow) itemExists(name string) bool {
	for _, item := range flow.machine.Items() {
		if item.Name() == name {
			return true
		}
	}
	return false
}
