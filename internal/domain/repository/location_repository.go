package repository

import "github.com/jhoicas/InventarioQR-api/internal/domain/entity"

// LocationRepository define el puerto del registro de ubicaciones (DIP).
// Eliminar una ubicación no valida ni toca los artículos que la referencian;
// la resolución de nombres colgantes la cubre el caso de uso con un sentinela.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	Delete(id string) error
}
