package dto

import "time"

// CreateItemRequest entrada para crear un artículo. Quantity es la cantidad
// inicial; si es positiva se registra un asiento Inbound de apertura en el libro.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	LocationID  string `json:"location_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	MinStock    int    `json:"min_stock" validate:"min=0"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// UpdateItemRequest parche explícito para editar un artículo: solo los campos
// presentes se aplican. La cantidad no se edita por este camino, solo a través
// de movimientos de stock.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU         *string `json:"sku" validate:"omitempty,min=1,max=100"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=100"`
	LocationID  *string `json:"location_id"`
	MinStock    *int    `json:"min_stock" validate:"omitempty,min=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// ItemResponse salida de un artículo. LocationName llega resuelto ("N/A" si la
// ubicación ya no existe) y LowStock es el predicado derivado quantity <= min_stock.
type ItemResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Category     string    `json:"category"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	Quantity     int       `json:"quantity"`
	MinStock     int       `json:"min_stock"`
	LowStock     bool      `json:"low_stock"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ItemFilterRequest filtros de listado (query params); se combinan con AND.
type ItemFilterRequest struct {
	Search     string `query:"search"`
	Category   string `query:"category"`
	LocationID string `query:"location_id"`
}
