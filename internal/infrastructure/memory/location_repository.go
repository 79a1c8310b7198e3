package memory

import (
	"sort"

	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
)

// LocationRepository implementación en memoria del registro de ubicaciones.
type LocationRepository struct {
	store *Store
}

// NewLocationRepository construye el repositorio sobre el Store compartido.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

// Create almacena una ubicación nueva.
func (r *LocationRepository) Create(location *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.locations[location.ID] = cloneLocation(location)
	return nil
}

// GetByID devuelve la ubicación o (nil, nil) si no existe.
func (r *LocationRepository) GetByID(id string) (*entity.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneLocation(r.store.locations[id]), nil
}

// Update reemplaza el registro de la ubicación.
func (r *LocationRepository) Update(location *entity.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.locations[location.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.locations[location.ID] = cloneLocation(location)
	return nil
}

// List devuelve todas las ubicaciones ordenadas por fecha de creación.
func (r *LocationRepository) List() ([]*entity.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Location, 0, len(r.store.locations))
	for _, l := range r.store.locations {
		list = append(list, cloneLocation(l))
	}
	sort.Slice(list, func(a, b int) bool {
		if !list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].CreatedAt.Before(list[b].CreatedAt)
		}
		return list[a].Name < list[b].Name
	})
	return list, nil
}

// Delete elimina la ubicación. No valida ni toca los artículos que la
// referencian: las referencias colgantes se resuelven con el sentinela "N/A".
func (r *LocationRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.locations, id)
	return nil
}
