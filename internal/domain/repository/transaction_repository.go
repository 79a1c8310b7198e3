package repository

import "github.com/jhoicas/InventarioQR-api/internal/domain/entity"

// TransactionFilter filtros de igualdad opcionales para el reporte del libro.
// Campos vacíos no filtran; los presentes se combinan con AND.
type TransactionFilter struct {
	Type   string
	ItemID string
}

// TransactionRepository define el puerto del libro de movimientos (DIP).
// Create nunca falla por reglas de negocio: la precondición (que el artículo
// exista) pertenece al caso de uso que lo invoca. Los listados devuelven los
// asientos del más reciente al más antiguo.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	ListByItem(itemID string) ([]*entity.Transaction, error)
	List(filter TransactionFilter) ([]*entity.Transaction, error)
	// DeleteByItem elimina en cascada los asientos de un artículo; lo invoca la
	// eliminación del artículo, nunca la operación normal del libro.
	DeleteByItem(itemID string) error
}
