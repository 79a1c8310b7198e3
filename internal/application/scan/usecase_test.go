package scan_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/memory"
	"github.com/jhoicas/InventarioQR-api/internal/infrastructure/scanner"
	"github.com/jhoicas/InventarioQR-api/pkg/logger"
)

type scanFixture struct {
	pushScanner *scanner.PushScanner
	itemRepo    *memory.ItemRepository
	txRepo      *memory.TransactionRepository
	session     *scan.SessionUseCase
}

func newScanFixture(t *testing.T, devices ...scan.Device) *scanFixture {
	t.Helper()
	store := memory.NewStore()
	itemRepo := memory.NewItemRepository(store)
	stockUC := inventory.NewApplyStockChangeUseCase(memory.NewTxRunner(store))
	push := scanner.New(devices)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return &scanFixture{
		pushScanner: push,
		itemRepo:    itemRepo,
		txRepo:      memory.NewTransactionRepository(store),
		session:     scan.NewSessionUseCase(push, stockUC, itemRepo, log),
	}
}

func twoCameras() []scan.Device {
	return []scan.Device{
		{ID: "cam0", Label: "Front Camera"},
		{ID: "cam1", Label: "Back Camera"},
	}
}

func (f *scanFixture) seedItem(t *testing.T, sku string, quantity int) *entity.Item {
	t.Helper()
	now := time.Now()
	item := &entity.Item{
		ID: "item-" + sku, Name: "Artículo " + sku, SKU: sku,
		Category: "General", LocationID: "loc1",
		Quantity: quantity, MinStock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, f.itemRepo.Create(item))
	return item
}

func TestSession_Start_PrefiereCamaraTrasera(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)

	require.NoError(t, f.session.Start(context.Background(), ""))

	status := f.session.Status()
	assert.True(t, status.Decoding)
	assert.Equal(t, "cam1", status.DeviceID, "con device_id vacío se elige la cámara trasera por etiqueta")
}

func TestSession_Start_SinCamaras(t *testing.T) {
	f := newScanFixture(t)
	err := f.session.Start(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrDeviceAccess)
}

func TestSession_Start_CambioDeCamaraDetieneLaActiva(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	require.NoError(t, f.session.Start(context.Background(), "cam0"))

	// Cambiar de cámara no debe fallar por captura ya activa.
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	assert.Equal(t, "cam1", f.session.Status().DeviceID)
}

func TestSession_Lookup_EncuentraArticuloYReanuda(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	item := f.seedItem(t, "HDW-001", 50)
	require.NoError(t, f.session.SetMode(scan.ModeLookup))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))

	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	status := f.session.Status()
	assert.Nil(t, status.Pending, "lookup no deja escaneo pendiente")
	assert.Equal(t, item.ID, status.LastItemID)
	assert.Contains(t, status.LastMessage, "Artículo encontrado")
	assert.True(t, status.Decoding, "tras el lookup la captura se reanuda sola")
}

func TestSession_Lookup_SKUDesconocido(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	require.NoError(t, f.session.SetMode(scan.ModeLookup))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))

	require.True(t, f.pushScanner.Deliver("cam1", "NO-EXISTE"))

	status := f.session.Status()
	assert.Empty(t, status.LastItemID)
	assert.Contains(t, status.LastMessage, "No se encontró ningún artículo con SKU NO-EXISTE")
}

func TestSession_Inbound_LecturaDetieneCapturaYDejaPendiente(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	f.seedItem(t, "HDW-001", 50)
	require.NoError(t, f.session.SetMode(scan.ModeInbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))

	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	status := f.session.Status()
	require.NotNil(t, status.Pending)
	assert.Equal(t, "HDW-001", status.Pending.SKU)
	assert.False(t, status.Decoding, "con un escaneo pendiente la captura queda detenida")

	// Una lectura rezagada mientras hay pendiente se descarta.
	assert.False(t, f.pushScanner.Deliver("cam1", "STS-003"))
	assert.Equal(t, "HDW-001", f.session.Status().Pending.SKU)
}

func TestSession_Confirm_EntradaFirmaPositivo(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	item := f.seedItem(t, "HDW-001", 50)
	require.NoError(t, f.session.SetMode(scan.ModeInbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	tx, err := f.session.Confirm(context.Background(), dto.ConfirmScanRequest{Quantity: 5, Notes: "recepción"})
	require.NoError(t, err)
	assert.Equal(t, 5, tx.QuantityChange)
	assert.Equal(t, entity.TransactionTypeInbound, tx.Type)

	got, err := f.itemRepo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 55, got.Quantity)

	status := f.session.Status()
	assert.Nil(t, status.Pending, "confirmar limpia el pendiente")
	assert.True(t, status.Decoding, "confirmar reanuda la captura")
}

func TestSession_Confirm_SalidaFirmaNegativo(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	item := f.seedItem(t, "HDW-001", 50)
	require.NoError(t, f.session.SetMode(scan.ModeOutbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	tx, err := f.session.Confirm(context.Background(), dto.ConfirmScanRequest{Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, -12, tx.QuantityChange, "en modo outbound la cantidad confirmada se firma en negativo")
	assert.Equal(t, entity.TransactionTypeOutbound, tx.Type)

	got, err := f.itemRepo.GetByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 38, got.Quantity)
}

func TestSession_Confirm_SKUDesconocido(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	require.NoError(t, f.session.SetMode(scan.ModeInbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.True(t, f.pushScanner.Deliver("cam1", "NO-EXISTE"))

	_, err := f.session.Confirm(context.Background(), dto.ConfirmScanRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	status := f.session.Status()
	assert.Nil(t, status.Pending, "el error se reporta una sola vez y la sesión queda lista")
	assert.Contains(t, status.LastMessage, "No se encontró ningún artículo con SKU NO-EXISTE")
	assert.True(t, status.Decoding, "sin reintentos automáticos: se reanuda para el siguiente escaneo")
}

func TestSession_Confirm_SinPendienteOCantidadInvalida(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	f.seedItem(t, "HDW-001", 50)

	_, err := f.session.Confirm(context.Background(), dto.ConfirmScanRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin escaneo pendiente no hay nada que confirmar")

	require.NoError(t, f.session.SetMode(scan.ModeInbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	_, err = f.session.Confirm(context.Background(), dto.ConfirmScanRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad confirmada debe ser al menos 1")
}

func TestSession_Reset_DescartaPendienteYReanuda(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	f.seedItem(t, "HDW-001", 50)
	require.NoError(t, f.session.SetMode(scan.ModeOutbound))
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.True(t, f.pushScanner.Deliver("cam1", "HDW-001"))

	require.NoError(t, f.session.Reset(context.Background()))

	status := f.session.Status()
	assert.Nil(t, status.Pending)
	assert.True(t, status.Decoding, "escanear de nuevo: la captura vuelve a estar activa")

	// El descarte no dejó rastro en el stock.
	got, err := f.itemRepo.GetBySKU("HDW-001")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Quantity)
}

func TestSession_SetMode(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	require.NoError(t, f.session.SetMode(scan.ModeOutbound))
	assert.Equal(t, scan.ModeOutbound, f.session.Status().Mode)

	assert.ErrorIs(t, f.session.SetMode("turbo"), domain.ErrInvalidInput)
}

func TestSession_Stop_LiberaLaCamara(t *testing.T) {
	f := newScanFixture(t, twoCameras()...)
	require.NoError(t, f.session.Start(context.Background(), "cam1"))
	require.NoError(t, f.session.Stop(context.Background()))

	assert.False(t, f.session.Status().Decoding)
	assert.False(t, f.pushScanner.Deliver("cam1", "HDW-001"), "con la captura detenida las lecturas se descartan")

	// Stop es idempotente.
	require.NoError(t, f.session.Stop(context.Background()))
}
