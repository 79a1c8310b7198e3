package inventory

import (
	"context"

	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// TxRunner ejecuta una función como un único paso ininterrumpido sobre el
// estado compartido, pasando repositorios atados a ese paso. Garantiza la
// atomicidad del motor de inventario: la cantidad del artículo y el asiento
// del libro se observan juntos o no se observa ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
