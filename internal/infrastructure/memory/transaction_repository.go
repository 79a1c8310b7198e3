package memory

import (
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// TransactionRepository implementación en memoria del libro de movimientos.
// Con locked=true los métodos asumen que TxRunner ya tiene el lock de escritura.
type TransactionRepository struct {
	store  *Store
	locked bool
}

// NewTransactionRepository construye el repositorio sobre el Store compartido.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *TransactionRepository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

// Create añade un asiento al final del libro. Nunca falla por reglas de
// negocio: la precondición pertenece al caso de uso.
func (r *TransactionRepository) Create(tx *entity.Transaction) error {
	defer r.lock()()
	r.store.ledger = append(r.store.ledger, cloneTransaction(tx))
	return nil
}

// ListByItem devuelve los asientos del artículo, del más reciente al más antiguo.
func (r *TransactionRepository) ListByItem(itemID string) ([]*entity.Transaction, error) {
	return r.List(repository.TransactionFilter{ItemID: itemID})
}

// List devuelve los asientos que cumplen los filtros de igualdad, del más
// reciente al más antiguo. El libro se inserta en orden cronológico, así que
// basta con recorrerlo al revés.
func (r *TransactionRepository) List(filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	defer r.rlock()()
	list := make([]*entity.Transaction, 0, len(r.store.ledger))
	for i := len(r.store.ledger) - 1; i >= 0; i-- {
		tx := r.store.ledger[i]
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.ItemID != "" && tx.ItemID != filter.ItemID {
			continue
		}
		list = append(list, cloneTransaction(tx))
	}
	return list, nil
}

// DeleteByItem elimina en cascada todos los asientos del artículo.
func (r *TransactionRepository) DeleteByItem(itemID string) error {
	defer r.lock()()
	kept := r.store.ledger[:0]
	for _, tx := range r.store.ledger {
		if tx.ItemID != itemID {
			kept = append(kept, tx)
		}
	}
	r.store.ledger = kept
	return nil
}
