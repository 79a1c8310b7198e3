package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/inventory"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
)

// InventoryHandler maneja el registro de movimientos de stock (protegido).
type InventoryHandler struct {
	uc *inventory.ApplyStockChangeUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ApplyStockChangeUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ApplyStockChange godoc
// @Summary      Registrar cambio de stock por SKU
// @Description  Resuelve el SKU, aplica el delta con signo (Inbound positivo,
// @Description  Outbound negativo, Adjustment cualquier signo) y añade el
// @Description  asiento en el libro como un único paso. Con SKU desconocido no
// @Description  se toca ningún estado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyStockChangeRequest  true  "sku, quantity_change, type, notes"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) ApplyStockChange(c *fiber.Ctx) error {
	var in dto.ApplyStockChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.ApplyStockChange(c.Context(), inventory.StockChangeInput{
		SKU:            in.SKU,
		QuantityChange: in.QuantityChange,
		Type:           in.Type,
		Notes:          in.Notes,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o convención de signos inválidos"})
		}
		if err == domain.ErrItemNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ningún artículo tiene ese SKU"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "movimiento registrado",
		"transaction_id": tx.ID,
	})
}
