// Package oplog adapts the machine's operation callbacks to zap.
package oplog

import (
	"go.uber.org/zap"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// Logger renders machine operation logs as structured zap entries.
type Logger struct {
	base *zap.Logger
}

// New wires a Logger over a zap logger.
func New(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

// LogOperation implements vending.OperationLogger.
func (logger *Logger) LogOperation(entry vending.OperationLog) {
	fields := make([]zap.Field, 0, 7)
	fields = append(fields,
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	)
	if entry.Item != "" {
		fields = append(fields, zap.String("item", entry.Item))
	}
	if entry.SessionID != "" {
		fields = append(fields, zap.String("session_id", entry.SessionID))
	}
	if entry.Amount != 0 {
		fields = append(fields, zap.Int64("amount_cents", entry.Amount.Int64()))
	}
	if entry.Change != 0 {
		fields = append(fields, zap.Int64("change_cents", entry.Change.Int64()))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
		logger.base.Warn("vending operation", fields...)
		return
	}
	logger.base.Info("vending operation", fields...)
}
