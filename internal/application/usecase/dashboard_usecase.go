package usecase

import (
	"time"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
)

// dashboardDays ventana de la serie de movimientos del dashboard.
const dashboardDays = 7

// DashboardUseCase construye el resumen del inventario para la vista
// principal: totales, artículos bajo mínimo y la serie diaria de entradas y
// salidas de los últimos 7 días. Solo lecturas.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, txRepo: txRepo}
}

// GetSummary calcula el resumen sobre el estado actual.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{})
	if err != nil {
		return nil, err
	}
	summary := &dto.DashboardSummaryDTO{TotalItems: len(items)}
	for _, item := range items {
		summary.TotalStock += item.Quantity
		if item.LowStock() {
			summary.LowStockItems++
		}
	}

	series, err := uc.dailyMovements()
	if err != nil {
		return nil, err
	}
	summary.DailyMovements = series
	return summary, nil
}

// dailyMovements agrega entradas y salidas por día natural, del día más
// antiguo al más reciente. Outbound se reporta en valor absoluto.
func (uc *DashboardUseCase) dailyMovements() ([]dto.DailyMovementDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowStart := todayStart.AddDate(0, 0, -(dashboardDays - 1))

	buckets := make(map[string]*dto.DailyMovementDTO, dashboardDays)
	series := make([]dto.DailyMovementDTO, dashboardDays)
	for i := 0; i < dashboardDays; i++ {
		date := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = dto.DailyMovementDTO{Date: date}
		buckets[date] = &series[i]
	}

	txs, err := uc.txRepo.List(repository.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	for _, tx := range txs {
		bucket, ok := buckets[tx.Timestamp.Format("2006-01-02")]
		if !ok {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeInbound:
			bucket.Inbound += tx.QuantityChange
		case entity.TransactionTypeOutbound:
			bucket.Outbound -= tx.QuantityChange
		}
	}
	return series, nil
}
