package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// ApplyStockChangeUseCase registra cambios de stock dirigidos por escaneo:
// resuelve el SKU (el operador escanea la etiqueta física, que codifica el
// SKU, nunca el ID interno), aplica el delta con signo a la cantidad y añade
// el asiento en el libro, todo dentro de un único paso del TxRunner.
type ApplyStockChangeUseCase struct {
	txRunner TxRunner
}

// NewApplyStockChangeUseCase construye el caso de uso.
func NewApplyStockChangeUseCase(txRunner TxRunner) *ApplyStockChangeUseCase {
	return &ApplyStockChangeUseCase{txRunner: txRunner}
}

// StockChangeInput entrada para un cambio de stock.
type StockChangeInput struct {
	SKU            string
	QuantityChange int
	Type           string // Inbound, Outbound, Adjustment
	Notes          string
}

// ApplyStockChange valida tipo y convención de signos, resuelve el SKU y, si
// existe, muta cantidad y libro como un solo paso. Con SKU desconocido
// devuelve ErrItemNotFound sin tocar ningún estado.
//
// No se aplica piso a la cantidad resultante: una salida puede dejarla en
// negativo (comportamiento permisivo heredado, documentado).
func (uc *ApplyStockChangeUseCase) ApplyStockChange(ctx context.Context, input StockChangeInput) (*entity.Transaction, error) {
	if input.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.TransactionTypeInbound:
		if input.QuantityChange <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.TransactionTypeOutbound:
		if input.QuantityChange >= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.TransactionTypeAdjustment:
		if input.QuantityChange == 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error {
		item, err := itemRepo.GetBySKU(input.SKU)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		now := time.Now()
		item.Quantity += input.QuantityChange
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		tx := &entity.Transaction{
			ID:             uuid.New().String(),
			ItemID:         item.ID,
			Type:           input.Type,
			QuantityChange: input.QuantityChange,
			Timestamp:      now,
			Notes:          input.Notes,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
