package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventarioQR-api/internal/application/auth"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *usecase.ItemUseCase
	LocationUC    *usecase.LocationUseCase
	TransactionUC *usecase.TransactionUseCase
	DashboardUC   *usecase.DashboardUseCase
	StockUC       *inventory.ApplyStockChangeUseCase
	ScanSession   *scan.SessionUseCase
	Frames        FrameSink
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Put("/:id", locationHandler.Rename)
	locations.Delete("/:id", locationHandler.Delete)

	// Items (protegido). La ruta por SKU va antes que /:id.
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/sku/:sku", itemHandler.GetBySKU)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/transactions", transactionHandler.ListByItem)

	// Movimientos de stock (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	invGroup.Post("/movements", inventoryHandler.ApplyStockChange)

	// Reporte de transacciones (protegido)
	transactions := protected.Group("/transactions")
	transactions.Get("/", transactionHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Sesión de escaneo (protegido)
	scanner := protected.Group("/scanner")
	scannerHandler := NewScannerHandler(deps.ScanSession, deps.Frames)
	scanner.Get("/devices", scannerHandler.Devices)
	scanner.Get("/status", scannerHandler.Status)
	scanner.Post("/start", scannerHandler.Start)
	scanner.Post("/stop", scannerHandler.Stop)
	scanner.Post("/mode", scannerHandler.SetMode)
	scanner.Post("/frames", scannerHandler.Frame)
	scanner.Post("/confirm", scannerHandler.Confirm)
	scanner.Post("/reset", scannerHandler.Reset)
}
