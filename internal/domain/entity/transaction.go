package entity

import "time"

// Tipos de transacción de stock. Convención de signos: Inbound siempre
// positivo, Outbound siempre negativo, Adjustment cualquier signo distinto de cero.
const (
	TransactionTypeInbound    = "Inbound"
	TransactionTypeOutbound   = "Outbound"
	TransactionTypeAdjustment = "Adjustment"
)

// ValidTransactionType indica si t es uno de los tipos de transacción conocidos.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeInbound, TransactionTypeOutbound, TransactionTypeAdjustment:
		return true
	}
	return false
}

// Transaction es un asiento del libro de movimientos de stock. El libro es
// append-only: los asientos nunca se editan y solo desaparecen al eliminar en
// cascada el artículo que referencian.
type Transaction struct {
	ID             string
	ItemID         string
	Type           string // Inbound, Outbound, Adjustment
	QuantityChange int
	Timestamp      time.Time
	Notes          string
}
