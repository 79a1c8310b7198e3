package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/memory"
)

func newItem(id, name, sku, category, locationID string, createdAt time.Time) *entity.Item {
	return &entity.Item{
		ID:         id,
		Name:       name,
		SKU:        sku,
		Category:   category,
		LocationID: locationID,
		Quantity:   10,
		MinStock:   2,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestItemRepository_CreateYGetByID(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	item := newItem("i1", "Tornillo", "TOR-001", "Ferretería", "loc1", time.Now())

	require.NoError(t, repo.Create(item))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tornillo", got.Name)
	assert.Equal(t, "TOR-001", got.SKU)

	// El repositorio devuelve copias: mutar lo devuelto no toca el almacén.
	got.Name = "mutado"
	again, err := repo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, "Tornillo", again.Name, "el almacén no debe verse afectado por mutaciones externas")
}

func TestItemRepository_GetByID_NoExiste(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	got, err := repo.GetByID("no-existe")
	require.NoError(t, err, "un ID que no resuelve no es un error")
	assert.Nil(t, got)
}

func TestItemRepository_GetBySKU_CoincidenciaExacta(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	require.NoError(t, repo.Create(newItem("i1", "Tornillo", "TOR-001", "Ferretería", "loc1", time.Now())))

	got, err := repo.GetBySKU("TOR-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "i1", got.ID)

	// Sensible a mayúsculas: el SKU viene de la etiqueta física tal cual.
	got, err = repo.GetBySKU("tor-001")
	require.NoError(t, err)
	assert.Nil(t, got, "la búsqueda por SKU debe ser exacta")
}

func TestItemRepository_Update_NoExiste(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	err := repo.Update(newItem("fantasma", "X", "X-1", "C", "loc1", time.Now()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemRepository_Delete_NoExiste(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	assert.ErrorIs(t, repo.Delete("fantasma"), domain.ErrNotFound)
}

func TestItemRepository_List_BusquedaSinTildes(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	base := time.Now()
	require.NoError(t, repo.Create(newItem("i1", "Tornillería métrica", "TOR-001", "Ferretería", "loc1", base)))
	require.NoError(t, repo.Create(newItem("i2", "Cable HDMI", "CAB-002", "Electrónica", "loc1", base.Add(time.Second))))

	// "tornilleria" sin tilde y en minúsculas debe encontrar "Tornillería".
	list, err := repo.List(repository.ItemFilter{Search: "tornilleria"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "i1", list[0].ID)

	// La búsqueda también cruza SKU y categoría.
	list, err = repo.List(repository.ItemFilter{Search: "cab-002"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "i2", list[0].ID)

	list, err = repo.List(repository.ItemFilter{Search: "electronica"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "i2", list[0].ID)
}

func TestItemRepository_List_FiltrosCombinadosAND(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	base := time.Now()
	require.NoError(t, repo.Create(newItem("i1", "Tornillo A", "TOR-001", "Ferretería", "loc1", base)))
	require.NoError(t, repo.Create(newItem("i2", "Tornillo B", "TOR-002", "Ferretería", "loc2", base.Add(time.Second))))
	require.NoError(t, repo.Create(newItem("i3", "Cable", "CAB-001", "Electrónica", "loc1", base.Add(2*time.Second))))

	list, err := repo.List(repository.ItemFilter{Category: "Ferretería", LocationID: "loc1"})
	require.NoError(t, err)
	require.Len(t, list, 1, "los filtros se combinan con AND")
	assert.Equal(t, "i1", list[0].ID)
}

func TestItemRepository_List_OrdenYPaginacion(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	base := time.Now()
	require.NoError(t, repo.Create(newItem("i3", "C", "SKU-3", "Cat", "loc1", base.Add(2*time.Second))))
	require.NoError(t, repo.Create(newItem("i1", "A", "SKU-1", "Cat", "loc1", base)))
	require.NoError(t, repo.Create(newItem("i2", "B", "SKU-2", "Cat", "loc1", base.Add(time.Second))))

	list, err := repo.List(repository.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"i1", "i2", "i3"}, []string{list[0].ID, list[1].ID, list[2].ID},
		"el listado se ordena por fecha de creación ascendente")

	page, err := repo.List(repository.ItemFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "i2", page[0].ID)

	empty, err := repo.List(repository.ItemFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty, "un offset más allá del total devuelve página vacía, no error")
}
