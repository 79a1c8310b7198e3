package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/InventarioQR-api/internal/application/auth"
	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/application/usecase"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/memory"
	infrascanner "github.com/jhoicas/InventarioQR-api/internal/infrastructure/scanner"
	httpRouter "github.com/jhoicas/InventarioQR-api/internal/interfaces/http"
	"github.com/jhoicas/InventarioQR-api/pkg/config"
	"github.com/jhoicas/InventarioQR-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Todo el estado vive en memoria: se pierde al reiniciar el proceso.
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	txRunner := memory.NewTxRunner(store)

	stockUC := inventory.NewApplyStockChangeUseCase(txRunner)
	itemUC := usecase.NewItemUseCase(itemRepo, locationRepo, txRunner)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, itemRepo)
	dashboardUC := usecase.NewDashboardUseCase(itemRepo, transactionRepo)

	devices := make([]scan.Device, 0, len(cfg.Scanner.Devices))
	for _, d := range cfg.Scanner.Devices {
		devices = append(devices, scan.Device{ID: d.ID, Label: d.Label})
	}
	pushScanner := infrascanner.New(devices)
	scanSession := scan.NewSessionUseCase(pushScanner, stockUC, itemRepo, log)

	authUC := auth.NewAuthUseCase(
		auth.Credentials{
			Username:     cfg.Auth.Username,
			PasswordHash: cfg.Auth.PasswordHash,
		},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	if cfg.App.SeedDemo {
		if err := seedDemoData(itemUC, locationUC, stockUC); err != nil {
			log.Warn().Err(err).Msg("carga de datos de demostración")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InventarioQR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        itemUC,
		LocationUC:    locationUC,
		TransactionUC: transactionUC,
		DashboardUC:   dashboardUC,
		StockUC:       stockUC,
		ScanSession:   scanSession,
		Frames:        pushScanner,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Libera la cámara antes de cerrar el servidor.
	if err := scanSession.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("detener sesión de escaneo")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedDemoData carga un inventario de ejemplo para arrancar con datos que ver.
// El estado es volátil, así que la carga se repite en cada arranque.
func seedDemoData(itemUC *usecase.ItemUseCase, locationUC *usecase.LocationUseCase, stockUC *inventory.ApplyStockChangeUseCase) error {
	ctx := context.Background()

	rack1, err := locationUC.Create(dto.CreateLocationRequest{Name: "Warehouse A - Rack 1"})
	if err != nil {
		return err
	}
	rack2, err := locationUC.Create(dto.CreateLocationRequest{Name: "Warehouse A - Rack 2"})
	if err != nil {
		return err
	}
	shelf1, err := locationUC.Create(dto.CreateLocationRequest{Name: "Warehouse B - Shelf 1"})
	if err != nil {
		return err
	}

	items := []dto.CreateItemRequest{
		{
			Name:        "Heavy Duty Widget",
			SKU:         "HDW-001",
			Category:    "Widgets",
			LocationID:  rack1.ID,
			Quantity:    50,
			MinStock:    10,
			Description: "Widget industrial de alta resistencia",
		},
		{
			Name:        "Lightweight Gizmo",
			SKU:         "LWG-002",
			Category:    "Gizmos",
			LocationID:  rack2.ID,
			Quantity:    20,
			MinStock:    5,
			Description: "Gizmo ligero de uso general",
		},
		{
			Name:        "Standard Sprocket",
			SKU:         "STS-003",
			Category:    "Sprockets",
			LocationID:  shelf1.ID,
			Quantity:    120,
			MinStock:    25,
			Description: "Piñón estándar de repuesto",
		},
	}
	for _, in := range items {
		if _, err := itemUC.Create(ctx, in); err != nil {
			return err
		}
	}

	// Una salida de ejemplo para que el libro y el dashboard no arranquen vacíos.
	_, err = stockUC.ApplyStockChange(ctx, inventory.StockChangeInput{
		SKU:            "LWG-002",
		QuantityChange: -12,
		Type:           entity.TransactionTypeOutbound,
		Notes:          "Pedido #1042",
	})
	return err
}
