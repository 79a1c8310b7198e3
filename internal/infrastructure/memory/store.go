package memory

import (
	"sync"

	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
)

// Store mantiene todo el estado de la aplicación en memoria: la persistencia
// es un no-objetivo explícito del sistema, el estado vive y muere con el proceso.
//
// Un único RWMutex protege los tres conjuntos. Las lecturas toman RLock y las
// escrituras Lock; TxRunner toma el lock de escritura durante todo el cierre
// para que una mutación de stock (cantidad del artículo + asiento en el libro)
// sea un solo paso ininterrumpido observable de forma atómica.
//
// El libro es un slice y no un mapa: es append-only y el orden de inserción es
// el orden cronológico, lo que hace trivial el listado del más reciente al más
// antiguo.
type Store struct {
	mu        sync.RWMutex
	items     map[string]*entity.Item
	locations map[string]*entity.Location
	ledger    []*entity.Transaction
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		items:     make(map[string]*entity.Item),
		locations: make(map[string]*entity.Location),
	}
}

// Las entidades se copian al entrar y salir del Store para que ningún llamador
// retenga un puntero al estado interno (las escrituras pasan siempre por los
// repositorios, nunca por mutación directa).

func cloneItem(i *entity.Item) *entity.Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func cloneLocation(l *entity.Location) *entity.Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func cloneTransaction(t *entity.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
