package usecase

import (
	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// itemNameFallback sentinela para asientos cuyo artículo ya no existe.
const itemNameFallback = "N/A"

// TransactionUseCase consultas read-only sobre el libro de movimientos para la
// vista de reportes. No expone escrituras: los asientos solo los crea el motor
// de inventario.
type TransactionUseCase struct {
	repo     repository.TransactionRepository
	itemRepo repository.ItemRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, itemRepo repository.ItemRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, itemRepo: itemRepo}
}

// List devuelve los asientos que cumplen los filtros opcionales de igualdad
// (tipo y artículo, combinados con AND), del más reciente al más antiguo.
// Un tipo desconocido se rechaza con ErrInvalidInput.
func (uc *TransactionUseCase) List(typeFilter, itemID string) (*dto.TransactionListResponse, error) {
	if typeFilter != "" && !entity.ValidTransactionType(typeFilter) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(repository.TransactionFilter{Type: typeFilter, ItemID: itemID})
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list)
}

// ListByItem devuelve todos los asientos de un artículo, del más reciente al
// más antiguo.
func (uc *TransactionUseCase) ListByItem(itemID string) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return uc.toListResponse(list)
}

func (uc *TransactionUseCase) toListResponse(list []*entity.Transaction) (*dto.TransactionListResponse, error) {
	type itemRef struct {
		name string
		sku  string
	}
	refs := map[string]itemRef{}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		ref, ok := refs[tx.ItemID]
		if !ok {
			ref = itemRef{name: itemNameFallback, sku: itemNameFallback}
			if item, err := uc.itemRepo.GetByID(tx.ItemID); err == nil && item != nil {
				ref = itemRef{name: item.Name, sku: item.SKU}
			}
			refs[tx.ItemID] = ref
		}
		items = append(items, dto.TransactionResponse{
			ID:             tx.ID,
			ItemID:         tx.ItemID,
			ItemName:       ref.name,
			ItemSKU:        ref.sku,
			Type:           tx.Type,
			QuantityChange: tx.QuantityChange,
			Timestamp:      tx.Timestamp,
			Notes:          tx.Notes,
		})
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}
