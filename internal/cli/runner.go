package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// Runner is the interactive application loop over a machine.
type Runner struct {
	out     io.Writer
	input   *InputReader
	display *Display
	router  *MenuRouter
}

// NewRunner composes the CLI over the given machine and streams.
func NewRunner(in io.Reader, out io.Writer, machine *vending.VendingMachine) *Runner {
	input := NewInputReader(in)
	display := NewDisplay(out, machine)
	parser := NewPaymentParser()
	purchase := NewPurchaseFlow(out, machine, display, input, parser)
	reload := NewReloadFlow(out, machine, input, parser)
	return &Runner{
		out:     out,
		input:   input,
		display: display,
		router:  NewMenuRouter(display, purchase, reload),
	}
}

// Run shows the menu until the user quits or the input closes.
func (runner *Runner) Run() {
	runner.display.ShowWelcome()
	for {
		runner.display.ShowMenu()
		line, ok := runner.input.ReadLine()
		if !ok {
			runner.display.ShowGoodbye()
			return
		}
		choice := strings.ToLower(line)
		runner.router.Route(choice)
		if runner.router.QuitCommand(choice) {
			return
		}
		fmt.Fprintln(runner.out)
	}
}
