package dto

// DashboardSummaryDTO resumen del inventario para la vista principal.
type DashboardSummaryDTO struct {
	TotalItems     int                `json:"total_items"`
	TotalStock     int                `json:"total_stock"`
	LowStockItems  int                `json:"low_stock_items"`
	DailyMovements []DailyMovementDTO `json:"daily_movements"`
}

// DailyMovementDTO entradas y salidas agregadas de un día (los últimos 7 días,
// del más antiguo al más reciente). Outbound se reporta en valor absoluto.
type DailyMovementDTO struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}
