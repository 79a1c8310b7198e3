package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/InventarioQR-api/internal/application/dto"
	"github.com/jhoicas/InventarioQR-api/internal/application/usecase"
	"github.com/jhoicas/InventarioQR-api/internal/domain"
)

// TransactionHandler maneja la consulta del libro de movimientos (protegido).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Reporte de transacciones
// @Description  Asientos del más reciente al más antiguo, con filtros de
// @Description  igualdad opcionales por tipo y por artículo (AND).
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type     query  string  false  "Inbound, Outbound o Adjustment"
// @Param        item_id  query  string  false  "ID del artículo"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("type"), c.Query("item_id"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de transacción desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Historial de un artículo
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/items/{id}/transactions [get]
func (h *TransactionHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByItem(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
