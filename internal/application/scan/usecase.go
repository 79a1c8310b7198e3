package scan

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
	"github.com/jhoicas/InventarioQR-api/internal/domain/entity"
	"github.com/jhoicas/InventarioQR-api/internal/domain/repository"
	"github.com/jhoicas/InventarioQR-api/pkg/logger"
)

// Modos de escaneo.
const (
	ModeInbound  = "inbound"
	ModeOutbound = "outbound"
	ModeLookup   = "lookup"
)

// PendingScan escaneo a la espera de confirmación del operador.
type PendingScan struct {
	SKU       string
	ScannedAt time.Time
}

// SessionUseCase gobierna la sesión de escaneo: arranca y detiene la
// decodificación, recibe los payloads decodificados y los convierte en
// consultas (modo lookup) o en mutaciones de stock pendientes de confirmar
// (modos inbound/outbound).
//
// Entre lectura y confirmación la captura queda detenida: una segunda lectura
// no puede competir con una mutación aún pendiente. No hay timeout sobre un
// escaneo pendiente; la cancelación es del operador ("escanear de nuevo").
type SessionUseCase struct {
	scanner  Scanner
	stockUC  *inventory.ApplyStockChangeUseCase
	itemRepo repository.ItemRepository
	log      *logger.Logger

	mu          sync.Mutex
	mode        string
	deviceID    string
	decoding    bool
	pending     *PendingScan
	lastMessage string
	lastItemID  string
}

// NewSessionUseCase construye la sesión en modo lookup.
func NewSessionUseCase(scanner Scanner, stockUC *inventory.ApplyStockChangeUseCase, itemRepo repository.ItemRepository, log *logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		scanner:  scanner,
		stockUC:  stockUC,
		itemRepo: itemRepo,
		log:      log,
		mode:     ModeLookup,
	}
}

// Devices enumera las cámaras disponibles; ErrDeviceAccess si no hay ninguna.
func (uc *SessionUseCase) Devices(ctx context.Context) ([]Device, error) {
	return uc.scanner.EnumerateDevices(ctx)
}

// SetMode cambia el modo de escaneo.
func (uc *SessionUseCase) SetMode(mode string) error {
	switch mode {
	case ModeInbound, ModeOutbound, ModeLookup:
	default:
		return domain.ErrInvalidInput
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.mode = mode
	return nil
}

// Start arranca la decodificación continua. Con deviceID vacío elige cámara,
// prefiriendo una trasera/environment por la etiqueta. Si ya hay una captura
// activa la detiene primero (nunca dos capturas a la vez).
func (uc *SessionUseCase) Start(ctx context.Context, deviceID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.decoding {
		if err := uc.scanner.StopDecoding(ctx); err != nil {
			return err
		}
		uc.decoding = false
	}
	if deviceID == "" {
		devices, err := uc.scanner.EnumerateDevices(ctx)
		if err != nil {
			return err
		}
		deviceID = preferRear(devices)
	}
	uc.deviceID = deviceID
	return uc.startLocked(ctx)
}

// Stop detiene la captura y libera la cámara (desmontaje de la sesión).
func (uc *SessionUseCase) Stop(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.decoding {
		return nil
	}
	uc.decoding = false
	return uc.scanner.StopDecoding(ctx)
}

// Confirm aplica el escaneo pendiente como movimiento de stock: quantity se
// firma según el modo (inbound positivo, outbound negativo). Con SKU
// desconocido reporta ErrItemNotFound una sola vez y la sesión queda lista
// para el siguiente intento; no hay reintentos automáticos.
func (uc *SessionUseCase) Confirm(ctx context.Context, in dto.ConfirmScanRequest) (*entity.Transaction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var input inventory.StockChangeInput
	switch uc.mode {
	case ModeInbound:
		input = inventory.StockChangeInput{
			SKU:            uc.pending.SKU,
			QuantityChange: in.Quantity,
			Type:           entity.TransactionTypeInbound,
			Notes:          in.Notes,
		}
	case ModeOutbound:
		input = inventory.StockChangeInput{
			SKU:            uc.pending.SKU,
			QuantityChange: -in.Quantity,
			Type:           entity.TransactionTypeOutbound,
			Notes:          in.Notes,
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	tx, err := uc.stockUC.ApplyStockChange(ctx, input)
	if err != nil {
		uc.lastMessage = fmt.Sprintf("No se encontró ningún artículo con SKU %s", uc.pending.SKU)
		uc.resetLocked(ctx)
		return nil, err
	}
	uc.lastMessage = fmt.Sprintf("Stock actualizado para SKU %s (%+d)", input.SKU, input.QuantityChange)
	uc.resetLocked(ctx)
	return tx, nil
}

// Reset descarta el escaneo pendiente ("escanear de nuevo") y reanuda la captura.
func (uc *SessionUseCase) Reset(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.resetLocked(ctx)
	return nil
}

// Status devuelve una instantánea de la sesión.
func (uc *SessionUseCase) Status() *dto.ScanStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	status := &dto.ScanStatusResponse{
		Mode:        uc.mode,
		Decoding:    uc.decoding,
		DeviceID:    uc.deviceID,
		LastMessage: uc.lastMessage,
		LastItemID:  uc.lastItemID,
	}
	if uc.pending != nil {
		status.Pending = &dto.PendingScanDTO{SKU: uc.pending.SKU, ScannedAt: uc.pending.ScannedAt}
	}
	return status
}

// onDecoded recibe una lectura exitosa. Detiene la captura antes de publicar
// nada: el asiento pendiente y la cámara nunca conviven activos.
func (uc *SessionUseCase) onDecoded(text string) {
	ctx := context.Background()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.pending != nil {
		// la captura debería estar parada; una lectura rezagada se descarta
		uc.log.Debug().Str("payload", text).Msg("lectura descartada con escaneo pendiente")
		return
	}
	if err := uc.scanner.StopDecoding(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("detener decodificación tras lectura")
	}
	uc.decoding = false

	if uc.mode == ModeLookup {
		uc.lookupLocked(ctx, text)
		return
	}
	uc.pending = &PendingScan{SKU: text, ScannedAt: time.Now()}
}

// lookupLocked resuelve el SKU para la vista de detalle y reanuda la captura.
func (uc *SessionUseCase) lookupLocked(ctx context.Context, sku string) {
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil || item == nil {
		uc.lastMessage = fmt.Sprintf("No se encontró ningún artículo con SKU %s", sku)
		uc.lastItemID = ""
	} else {
		uc.lastMessage = fmt.Sprintf("Artículo encontrado: %s", item.Name)
		uc.lastItemID = item.ID
	}
	if err := uc.startLocked(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("reanudar decodificación tras lookup")
	}
}

func (uc *SessionUseCase) resetLocked(ctx context.Context) {
	uc.pending = nil
	if uc.deviceID == "" {
		return
	}
	if err := uc.startLocked(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("reanudar decodificación tras reset")
	}
}

func (uc *SessionUseCase) startLocked(ctx context.Context) error {
	if uc.decoding {
		return nil
	}
	if err := uc.scanner.StartDecoding(ctx, uc.deviceID, uc.onDecoded); err != nil {
		return err
	}
	uc.decoding = true
	return nil
}

// preferRear elige el dispositivo cuya etiqueta sugiere cámara trasera; si
// ninguna lo sugiere, el primero.
func preferRear(devices []Device) string {
	if len(devices) == 0 {
		return ""
	}
	for _, d := range devices {
		label := strings.ToLower(d.Label)
		for _, hint := range []string{"back", "rear", "trasera", "environment"} {
			if strings.Contains(label, hint) {
				return d.ID
			}
		}
	}
	return devices[0].ID
}
