package memory

import (
	"context"

	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// TxRunner ejecuta una función con el lock de escritura del Store tomado de
// principio a fin, pasando repositorios ya atados a ese lock. Es el equivalente
// en memoria de una transacción SQL: ningún lector puede observar la cantidad
// de un artículo actualizada sin su asiento en el libro, ni al revés.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn como un único paso ininterrumpido. Los repositorios que
// recibe fn no vuelven a tomar el lock. No hay rollback: fn debe validar sus
// precondiciones antes de escribir.
func (r *TxRunner) Run(ctx context.Context, fn func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(
		&ItemRepository{store: r.store, locked: true},
		&TransactionRepository{store: r.store, locked: true},
	)
}
