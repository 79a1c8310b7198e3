package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/scan"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
)

// FrameSink recibe payloads decodificados que el cliente entrega por HTTP.
type FrameSink interface {
	Deliver(deviceID, text string) bool
}

// ScannerHandler maneja la sesión de escaneo (protegido).
type ScannerHandler struct {
	session *scan.SessionUseCase
	frames  FrameSink
}

// NewScannerHandler construye el handler.
func NewScannerHandler(session *scan.SessionUseCase, frames FrameSink) *ScannerHandler {
	return &ScannerHandler{session: session, frames: frames}
}

// Devices godoc
// @Summary      Listar cámaras disponibles
// @Tags         scanner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanDeviceListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/scanner/devices [get]
func (h *ScannerHandler) Devices(c *fiber.Ctx) error {
	devices, err := h.session.Devices(c.Context())
	if err != nil {
		if err == domain.ErrDeviceAccess {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DEVICE_ERROR", Message: "no hay cámaras disponibles; revise permisos y reintente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := dto.ScanDeviceListResponse{Devices: make([]dto.ScanDeviceResponse, 0, len(devices))}
	for _, d := range devices {
		out.Devices = append(out.Devices, dto.ScanDeviceResponse{ID: d.ID, Label: d.Label})
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Arrancar decodificación
// @Description  Con device_id vacío elige cámara, prefiriendo una trasera.
// @Description  Si había una captura activa la detiene antes de cambiar.
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartScanRequest  false  "Cámara a usar"
// @Success      200   {object}  dto.ScanStatusResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/scanner/start [post]
func (h *ScannerHandler) Start(c *fiber.Ctx) error {
	var in dto.StartScanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.session.Start(c.Context(), in.DeviceID); err != nil {
		if err == domain.ErrDeviceAccess {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DEVICE_ERROR", Message: "no se pudo acceder a la cámara"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.session.Status())
}

// Stop godoc
// @Summary      Detener decodificación y liberar la cámara
// @Tags         scanner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanStatusResponse
// @Router       /api/scanner/stop [post]
func (h *ScannerHandler) Stop(c *fiber.Ctx) error {
	if err := h.session.Stop(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.session.Status())
}

// SetMode godoc
// @Summary      Cambiar modo de escaneo
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanModeRequest  true  "inbound, outbound o lookup"
// @Success      200   {object}  dto.ScanStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scanner/mode [post]
func (h *ScannerHandler) SetMode(c *fiber.Ctx) error {
	var in dto.ScanModeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.session.SetMode(in.Mode); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modo desconocido"})
	}
	return c.JSON(h.session.Status())
}

// Frame godoc
// @Summary      Entregar una lectura decodificada
// @Description  El cliente (dueño de la cámara) entrega el texto de cada
// @Description  lectura exitosa. Se descarta si la captura está detenida, por
// @Description  ejemplo mientras un escaneo espera confirmación.
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanFrameRequest  true  "device_id y texto decodificado"
// @Success      200   {object}  dto.ScanStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scanner/frames [post]
func (h *ScannerHandler) Frame(c *fiber.Ctx) error {
	var in dto.ScanFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "text es requerido"})
	}
	h.frames.Deliver(in.DeviceID, in.Text)
	return c.JSON(h.session.Status())
}

// Status godoc
// @Summary      Estado de la sesión de escaneo
// @Tags         scanner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanStatusResponse
// @Router       /api/scanner/status [get]
func (h *ScannerHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.session.Status())
}

// Confirm godoc
// @Summary      Confirmar el escaneo pendiente
// @Description  Aplica la mutación de stock con la cantidad indicada, firmada
// @Description  según el modo, y reanuda la captura.
// @Tags         scanner
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmScanRequest  true  "quantity y notes"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scanner/confirm [post]
func (h *ScannerHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.session.Confirm(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no hay escaneo pendiente o cantidad inválida"})
		}
		if err == domain.ErrItemNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ningún artículo tiene el SKU escaneado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "movimiento registrado",
		"transaction_id": tx.ID,
	})
}

// Reset godoc
// @Summary      Descartar el escaneo pendiente
// @Description  "Escanear de nuevo": limpia el pendiente y reanuda la captura.
// @Tags         scanner
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScanStatusResponse
// @Router       /api/scanner/reset [post]
func (h *ScannerHandler) Reset(c *fiber.Ctx) error {
	if err := h.session.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.session.Status())
}
