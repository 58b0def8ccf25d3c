package vending

const (
	operationStartPurchase = "start_purchase"
	operationInsertPayment = "insert_payment"
	operationPurchase      = "purchase"
	operationAutoCancel    = "auto_cancel"
	operationCancel        = "cancel_purchase"
	operationLoadItem      = "load_item"
	operationReloadChange  = "reload_change"

	operationStatusOK    = "ok"
	operationStatusError = "error"
)
