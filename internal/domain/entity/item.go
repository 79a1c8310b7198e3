package entity

import "time"

// Item representa un artículo del inventario identificado por un SKU escaneable.
// El SKU es el identificador externo (lo que codifica la etiqueta física); el ID
// es la identidad interna estable contra la que se cruza el libro de movimientos.
// Quantity es estado derivado: cantidad inicial más la suma de QuantityChange de
// todas las transacciones que referencian su ID.
type Item struct {
	ID          string
	Name        string
	SKU         string // código único, visible para el operador y el escáner
	Category    string
	LocationID  string
	Quantity    int
	MinStock    int
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si la cantidad está en o por debajo del umbral mínimo.
// Es un predicado derivado, nunca se almacena.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinStock
}
