package memory

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// ItemRepository implementación en memoria del catálogo de artículos.
// Con locked=true los métodos asumen que TxRunner ya tiene el lock de escritura.
type ItemRepository struct {
	store  *Store
	locked bool
}

// NewItemRepository construye el repositorio sobre el Store compartido.
func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

func (r *ItemRepository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *ItemRepository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

// Create almacena un artículo nuevo.
func (r *ItemRepository) Create(item *entity.Item) error {
	defer r.lock()()
	r.store.items[item.ID] = cloneItem(item)
	return nil
}

// GetByID devuelve el artículo o (nil, nil) si no existe.
func (r *ItemRepository) GetByID(id string) (*entity.Item, error) {
	defer r.rlock()()
	return cloneItem(r.store.items[id]), nil
}

// GetBySKU resuelve por SKU con coincidencia exacta sensible a mayúsculas;
// devuelve (nil, nil) si ningún artículo lo tiene.
func (r *ItemRepository) GetBySKU(sku string) (*entity.Item, error) {
	defer r.rlock()()
	for _, item := range r.store.items {
		if item.SKU == sku {
			return cloneItem(item), nil
		}
	}
	return nil, nil
}

// Update reemplaza el registro completo del artículo.
func (r *ItemRepository) Update(item *entity.Item) error {
	defer r.lock()()
	if _, ok := r.store.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.items[item.ID] = cloneItem(item)
	return nil
}

// List devuelve los artículos que cumplen todos los filtros, ordenados por
// fecha de creación.
func (r *ItemRepository) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	defer r.rlock()()

	search := foldString(filter.Search)
	matched := make([]*entity.Item, 0, len(r.store.items))
	for _, item := range r.store.items {
		if search != "" &&
			!strings.Contains(foldString(item.Name), search) &&
			!strings.Contains(foldString(item.SKU), search) &&
			!strings.Contains(foldString(item.Category), search) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.LocationID != "" && item.LocationID != filter.LocationID {
			continue
		}
		matched = append(matched, cloneItem(item))
	}
	sort.Slice(matched, func(a, b int) bool {
		if !matched[a].CreatedAt.Equal(matched[b].CreatedAt) {
			return matched[a].CreatedAt.Before(matched[b].CreatedAt)
		}
		return matched[a].ID < matched[b].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*entity.Item{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Delete elimina el artículo; la cascada sobre el libro la orquesta el caso de uso.
func (r *ItemRepository) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.store.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.items, id)
	return nil
}

// foldString normaliza para búsqueda: minúsculas y sin marcas diacríticas,
// de modo que "Tornillería" coincida con "tornilleria".
func foldString(s string) string {
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
