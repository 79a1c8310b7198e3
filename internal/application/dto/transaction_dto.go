package dto

import "time"

// ApplyStockChangeRequest entrada para registrar un cambio de stock por SKU.
// Convención de signos: Inbound positivo, Outbound negativo, Adjustment
// cualquier signo distinto de cero.
type ApplyStockChangeRequest struct {
	SKU            string `json:"sku" validate:"required"`
	QuantityChange int    `json:"quantity_change" validate:"required"`
	Type           string `json:"type" validate:"required,oneof=Inbound Outbound Adjustment"`
	Notes          string `json:"notes"`
}

// TransactionResponse salida de un asiento del libro. ItemName e ItemSKU
// llegan resueltos contra el catálogo ("N/A" si el artículo ya no existe).
type TransactionResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name"`
	ItemSKU        string    `json:"item_sku"`
	Type           string    `json:"type"`
	QuantityChange int       `json:"quantity_change"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes,omitempty"`
}

// TransactionListResponse lista de asientos, del más reciente al más antiguo.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
