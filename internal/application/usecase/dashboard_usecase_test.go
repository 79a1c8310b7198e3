package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventarioQR-api/internal/application/usecase"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/memory"
)

func TestDashboardUseCase_GetSummary(t *testing.T) {
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	txRepo := memory.NewTransactionRepository(store)
	uc := usecase.NewDashboardUseCase(itemRepo, txRepo)

	now := time.Now()
	require.NoError(t, itemRepo.Create(&entity.Item{
		ID: "i1", Name: "A", SKU: "A-1", Category: "C", LocationID: "l1",
		Quantity: 50, MinStock: 10, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, itemRepo.Create(&entity.Item{
		ID: "i2", Name: "B", SKU: "B-1", Category: "C", LocationID: "l1",
		Quantity: 4, MinStock: 5, CreatedAt: now, UpdatedAt: now,
	}))

	// Movimientos de hoy.
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "t1", ItemID: "i1", Type: entity.TransactionTypeInbound,
		QuantityChange: 30, Timestamp: now,
	}))
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "t2", ItemID: "i1", Type: entity.TransactionTypeOutbound,
		QuantityChange: -12, Timestamp: now,
	}))
	// Un ajuste no entra en la serie de entradas/salidas.
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "t3", ItemID: "i2", Type: entity.TransactionTypeAdjustment,
		QuantityChange: -1, Timestamp: now,
	}))
	// Fuera de la ventana de 7 días.
	require.NoError(t, txRepo.Create(&entity.Transaction{
		ID: "t4", ItemID: "i1", Type: entity.TransactionTypeInbound,
		QuantityChange: 99, Timestamp: now.AddDate(0, 0, -10),
	}))

	summary, err := uc.GetSummary()
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 54, summary.TotalStock)
	assert.Equal(t, 1, summary.LowStockItems, "i2 está en o bajo su mínimo")

	require.Len(t, summary.DailyMovements, 7, "la serie cubre exactamente 7 días")
	today := summary.DailyMovements[6]
	assert.Equal(t, now.Format("2006-01-02"), today.Date, "el último punto de la serie es hoy")
	assert.Equal(t, 30, today.Inbound)
	assert.Equal(t, 12, today.Outbound, "las salidas se reportan en valor absoluto")

	for _, day := range summary.DailyMovements[:6] {
		assert.Zero(t, day.Inbound, "día sin movimientos: %s", day.Date)
		assert.Zero(t, day.Outbound, "día sin movimientos: %s", day.Date)
	}
}

func TestDashboardUseCase_InventarioVacio(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewDashboardUseCase(memory.NewItemRepository(store), memory.NewTransactionRepository(store))

	summary, err := uc.GetSummary()
	require.NoError(t, err)
	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.TotalStock)
	assert.Zero(t, summary.LowStockItems)
	assert.Len(t, summary.DailyMovements, 7, "la serie siempre trae los 7 días, aunque estén en cero")
}
