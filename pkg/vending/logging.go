package vending

// MachineOption configures a VendingMachine instance.
type MachineOption func(*VendingMachine)

// OperationLogger records domain-level events emitted by machine operations.
type OperationLogger interface {
	LogOperation(entry OperationLog)
}

// OperationLog describes one machine operation and its outcome.
type OperationLog struct {
	Operation string
	Item      string
	SessionID string
	Amount    AmountCents
	Change    AmountCents
	Status    string
	Error     error
}

// WithOperationLogger wires a logger that receives a callback for every
// operation.
func WithOperationLogger(logger OperationLogger) MachineOption {
	return func(machine *VendingMachine) {
		machine.logger = logger
	}
}
