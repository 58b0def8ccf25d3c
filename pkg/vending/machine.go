package vending

import "fmt"

// VendingMachine orchestrates the purchase workflow. It owns the canonical
// balance and inventory and wires the calculator, validators, session
// manager, and processor together. The design is single-session: at most
// one purchase is in flight system-wide.
type VendingMachine struct {
	inventory        *Inventory
	balance          Coins
	sessions         *SessionManager
	paymentValidator *PaymentValidator
	changeValidator  *ChangeValidator
	processor        *PaymentProcessor
	logger           OperationLogger
	currentSessionID string
}

// NewVendingMachine wires a machine over an inventory and an initial coin
// balance.
func NewVendingMachine(inventory *Inventory, balance Coins, options ...MachineOption) (*VendingMachine, error) {
	if inventory == nil {
		return nil, fmt.Errorf("%w: inventory dependency is nil", ErrInvalidMachineConfig)
	}
	if balance == nil {
		balance = Coins{}
	}
	if err := balance.validate(); err != nil {
		return nil, WrapError("machine", "balance", "invalid_float", fmt.Errorf("%w: %v", ErrInvalidMachineConfig, err))
	}
	calculator := NewChangeCalculator()
	machine := &VendingMachine{
		inventory:        inventory,
		balance:          balance.Clone(),
		sessions:         NewSessionManager(),
		paymentValidator: NewPaymentValidator(),
		changeValidator:  NewChangeValidator(calculator),
		processor:        NewPaymentProcessor(calculator),
	}
	for _, option := range options {
		if option != nil {
			option(machine)
		}
	}
	return machine, nil
}

// StartPurchase opens a payment session for the named item and prompts for
// its price.
func (machine *VendingMachine) StartPurchase(itemName string) (string, error) {
	item := machine.inventory.Find(itemName)
	var session *PaymentSession
	var operationError error
	if item == nil {
		operationError = fmt.Errorf("%w: %s", ErrItemNotFound, itemName)
	} else {
		session, operationError = machine.sessions.StartSession(item)
	}
	log := OperationLog{Operation: operationStartPurchase, Item: itemName, Error: operationError}
	if session != nil {
		log.SessionID = session.ID()
	}
	machine.logOperation(log)
	if operationError != nil {
		return "", operationError
	}
	machine.currentSessionID = session.ID()
	return fmt.Sprintf("Please insert %d cents for %s", item.PriceCents(), item.Name()), nil
}

// InsertPayment feeds coins into the active session. Invalid denominations
// are rejected without destroying the session, so the customer can retry
// with corrected coins. Once the session holds sufficient funds the machine
// validates change availability against the projected balance and either
// commits the sale or auto-cancels with a full refund.
func (machine *VendingMachine) InsertPayment(payment map[int]int) (string, error) {
	session := machine.sessions.CurrentSession()
	if session == nil {
		machine.logOperation(OperationLog{Operation: operationInsertPayment, Error: ErrNoActiveSession})
		return "", fmt.Errorf("%w: please start a purchase first", ErrNoActiveSession)
	}
	if err := machine.paymentValidator.ValidatePurchase(session.Item(), payment); err != nil {
		machine.logOperation(OperationLog{Operation: operationInsertPayment, Item: session.Item().Name(), SessionID: session.ID(), Error: err})
		return "", err
	}
	coins, err := NewCoins(payment)
	if err != nil {
		machine.logOperation(OperationLog{Operation: operationInsertPayment, Item: session.Item().Name(), SessionID: session.ID(), Error: err})
		return "", err
	}
	completed, remaining, err := machine.sessions.AddPayment(machine.currentSessionID, coins)
	machine.logOperation(OperationLog{Operation: operationInsertPayment, Item: session.Item().Name(), SessionID: session.ID(), Amount: coins.Total(), Error: err})
	if err != nil {
		return "", err
	}
	if !completed {
		return fmt.Sprintf("Please insert %d more cents", remaining), nil
	}
	return machine.completeCurrentPurchase()
}

// CancelPurchase terminates the active session and refunds whatever has
// accumulated, even zero.
func (machine *VendingMachine) CancelPurchase() (string, error) {
	refunded, err := machine.sessions.CancelSession(machine.currentSessionID)
	log := OperationLog{Operation: operationCancel, SessionID: machine.currentSessionID, Error: err}
	if err == nil {
		log.Amount = refunded.Total()
	}
	machine.logOperation(log)
	if err != nil {
		return "", err
	}
	machine.currentSessionID = ""
	if refunded.Total() == 0 {
		return "Purchase cancelled. No money to return.", nil
	}
	return fmt.Sprintf("Purchase cancelled. Money returned: %s", refunded.Format()), nil
}

// AvailableChange returns the total value of the machine's coin balance in
// cents. Pure projection, independent of any session.
func (machine *VendingMachine) AvailableChange() AmountCents {
	return machine.balance.Total()
}

// BalanceInEnglish renders the machine's coin balance as a coin list.
func (machine *VendingMachine) BalanceInEnglish() string {
	formatted := machine.balance.Format()
	if formatted == "" {
		return "No coins available"
	}
	return formatted
}

// DisplayStock renders the inventory, one item per line.
func (machine *VendingMachine) DisplayStock() string {
	items := machine.inventory.Items()
	if len(items) == 0 {
		return "No items available"
	}
	stock := ""
	for index, item := range items {
		if index > 0 {
			stock += "\n"
		}
		stock += fmt.Sprintf("%s: %d units @ %s", item.Name(), item.Quantity(), formatEuros(item.PriceCents()))
	}
	return stock
}

// Items returns the inventory in display order.
func (machine *VendingMachine) Items() []*Item {
	return machine.inventory.Items()
}

// LoadItem restocks an existing item or adds a new one. Pass a zero or
// negative priceCents to mean "unspecified"; it is required for new items.
func (machine *VendingMachine) LoadItem(name string, quantity int, priceCents int64) (string, error) {
	message, err := machine.inventory.Load(name, quantity, priceCents)
	machine.logOperation(OperationLog{Operation: operationLoadItem, Item: name, Error: err})
	if err != nil {
		return "", err
	}
	return message, nil
}

// ReloadChange merges validated coins into the machine's balance.
func (machine *VendingMachine) ReloadChange(coins map[int]int) (string, error) {
	added, err := NewCoins(coins)
	if err == nil && added.Total() == 0 {
		err = fmt.Errorf("%w: no coins provided", ErrInvalidCoinCount)
	}
	log := OperationLog{Operation: operationReloadChange, Error: err}
	if err == nil {
		log.Amount = added.Total()
	}
	machine.logOperation(log)
	if err != nil {
		return "", err
	}
	machine.balance = machine.balance.Merge(added)
	return fmt.Sprintf("Successfully added coins: %s. Total balance: %s", added.Format(), formatEuros(machine.balance.Total())), nil
}

// completeCurrentPurchase runs the change-availability check against the
// projected balance and either commits via the processor or auto-cancels
// with a full refund. The auto-cancel is the one case where sufficiency
// does not imply commit: the customer's coins are never retained when the
// machine cannot deliver the sale.
func (machine *VendingMachine) completeCurrentPurchase() (string, error) {
	session := machine.sessions.CurrentSession()
	item := session.Item()
	payment := session.AccumulatedPayment()
	if err := machine.paymentValidator.ValidatePaymentAmount(item, session.TotalPaid()); err != nil {
		return "", err
	}
	if validationError := machine.changeValidator.ValidateChangeAvailability(payment, item.PriceCents(), machine.balance); validationError != nil {
		refunded, err := machine.sessions.CancelSession(machine.currentSessionID)
		if err != nil {
			return "", err
		}
		machine.currentSessionID = ""
		machine.logOperation(OperationLog{Operation: operationAutoCancel, Item: item.Name(), SessionID: session.ID(), Amount: refunded.Total()})
		return fmt.Sprintf("Cannot provide change with available coins. Payment refunded: %s. Please retry with exact payment for %s.", refunded.Format(), item.Name()), nil
	}
	completedSession, err := machine.sessions.CompleteSession(machine.currentSessionID)
	if err != nil {
		return "", err
	}
	machine.currentSessionID = ""
	message, newBalance, changeGiven := machine.processor.ProcessPayment(completedSession.Item(), completedSession.AccumulatedPayment(), machine.balance)
	machine.balance = newBalance
	machine.logOperation(OperationLog{
		Operation: operationPurchase,
		Item:      item.Name(),
		SessionID: completedSession.ID(),
		Amount:    completedSession.TotalPaid(),
		Change:    changeGiven.Total(),
	})
	return message, nil
}

func (machine *VendingMachine) logOperation(entry OperationLog) {
	if machine.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	machine.logger.LogOperation(entry)
}

func formatEuros(amount AmountCents) string {
	return fmt.Sprintf("€%.2f", float64(amount)/100.0)
}
