package cli

// MenuRouter dispatches a menu choice to the matching flow.
type MenuRouter struct {
	display  *Display
	purchase *PurchaseFlow
	reload   *ReloadFlow
}

// NewMenuRouter wires the router.
func NewMenuRouter(display *Display, purchase *PurchaseFlow, reload *ReloadFlow) *MenuRouter {
	return &MenuRouter{display: display, purchase: purchase, reload: reload}
}

// Route runs the handler for one menu choice.
func (router *MenuRouter) Route(choice string) {
	switch choice {
	case "1":
		router.display.ShowAvailableItems()
	case "2":
		router.purchase.Execute()
	case "3":
		router.display.ShowCurrentBalance()
	case "4":
		router.display.ShowMachineStatus()
	case "5":
		router.reload.LoadItems()
	case "6":
		router.reload.ReloadCoins()
	case "q", "quit", "exit":
		router.display.ShowGoodbye()
	default:
		router.display.ShowInvalidChoice()
	}
}

// QuitCommand reports whether the choice ends the application loop.
func (router *MenuRouter) QuitCommand(choice string) bool {
	switch choice {
	case "q", "quit", "exit":
		return true
	}
	return false
}
