package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
)

// InventoryHandler maneja el motor de inventario: estado por unidad,
// faltantes, requisiciones y consumo.
type InventoryHandler struct {
	shortageUC    *inventory.ShortageUseCase
	requisitionUC *inventory.RequisitionUseCase
	usageUC       *inventory.UsageUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	shortageUC *inventory.ShortageUseCase,
	requisitionUC *inventory.RequisitionUseCase,
	usageUC *inventory.UsageUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		shortageUC:    shortageUC,
		requisitionUC: requisitionUC,
		usageUC:       usageUC,
	}
}

// Status godoc
// @Summary      Estado de inventario de una unidad
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.InventoryStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ambulances/{id}/inventory [get]
func (h *InventoryHandler) Status(c *fiber.Ctx) error {
	out, err := h.shortageUC.Status(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Shortfalls godoc
// @Summary      Faltantes de una unidad contra el estándar
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {array}  dto.ShortfallDTO
// @Router       /api/ambulances/{id}/shortfalls [get]
func (h *InventoryHandler) Shortfalls(c *fiber.Ctx) error {
	out, err := h.shortageUC.Shortfalls(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Critical godoc
// @Summary      Faltantes críticos de una unidad (los más agotados primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {array}  dto.ShortfallDTO
// @Router       /api/ambulances/{id}/shortfalls/critical [get]
func (h *InventoryHandler) Critical(c *fiber.Ctx) error {
	out, err := h.shortageUC.Critical(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRequisition godoc
// @Summary      Crear requisición con transferencia automática almacén → unidad
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequisitionRequest  true  "Carrito de requisición"
// @Success      201   {object}  dto.CreateRequisitionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/requisitions [post]
func (h *InventoryHandler) CreateRequisition(c *fiber.Ctx) error {
	var in dto.CreateRequisitionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.requisitionUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetRequisition godoc
// @Summary      Obtener requisición por ID
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la requisición"
// @Success      200  {object}  dto.RequisitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id} [get]
func (h *InventoryHandler) GetRequisition(c *fiber.Ctx) error {
	out, err := h.requisitionUC.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "requisición no encontrada"})
	}
	return c.JSON(out)
}

// ListRequisitions godoc
// @Summary      Listar requisiciones
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        ambulance_id  query  string  false  "Filtrar por unidad"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200           {array}  dto.RequisitionResponse
// @Router       /api/requisitions [get]
func (h *InventoryHandler) ListRequisitions(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.requisitionUC.List(c.Query("ambulance_id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordUsage godoc
// @Summary      Registrar consumo de insumos tras un servicio
// @Tags         usage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordUsageRequest  true  "Líneas de consumo"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usage [post]
func (h *InventoryHandler) RecordUsage(c *fiber.Ctx) error {
	var in dto.RecordUsageRequest
	if !parseBody(c, &in) {
		return nil
	}
	report, err := h.usageUC.Record(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         report.ID,
		"created_at": report.CreatedAt.Format(time.RFC3339),
	})
}

// ListUsage godoc
// @Summary      Listar reportes de consumo de una unidad
// @Tags         usage
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la unidad"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  entity.UsageReport
// @Router       /api/ambulances/{id}/usage [get]
func (h *InventoryHandler) ListUsage(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.usageUC.ListByAmbulance(c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
