package repository

import "github.com/jhoicas/InventarioQR-api/internal/domain/entity"

// ItemFilter filtros combinables (AND) para listar artículos del catálogo.
// Search aplica sobre nombre, SKU y categoría como subcadena, sin distinguir
// mayúsculas ni tildes; Category y LocationID son igualdad exacta.
type ItemFilter struct {
	Search     string
	Category   string
	LocationID string
	Limit      int
	Offset     int
}

// ItemRepository define el puerto de acceso al catálogo de artículos (DIP).
// Las búsquedas por identificador devuelven (nil, nil) cuando no hay coincidencia.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetBySKU resuelve por SKU con coincidencia exacta sensible a mayúsculas.
	// Es el único camino de resolución para operaciones disparadas por escaneo.
	GetBySKU(sku string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(filter ItemFilter) ([]*entity.Item, error)
	Delete(id string) error
}
