package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/inventory"
)

// ChecklistHandler maneja la verificación diaria de las unidades.
type ChecklistHandler struct {
	uc *inventory.ChecklistUseCase
}

// NewChecklistHandler construye el handler.
func NewChecklistHandler(uc *inventory.ChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{uc: uc}
}

// Submit godoc
// @Summary      Guardar checklist diario de una unidad
// @Tags         checklists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitChecklistRequest  true  "Checklist completo"
// @Success      201   {object}  dto.SubmitChecklistResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/checklists [post]
func (h *ChecklistHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitChecklistRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener checklist por ID
// @Tags         checklists
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del checklist"
// @Success      200  {object}  entity.Checklist
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/checklists/{id} [get]
func (h *ChecklistHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "checklist no encontrado"})
	}
	return c.JSON(out)
}

// ListByAmbulance godoc
// @Summary      Listar checklists de una unidad
// @Tags         checklists
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la unidad"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  entity.Checklist
// @Router       /api/ambulances/{id}/checklists [get]
func (h *ChecklistHandler) ListByAmbulance(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByAmbulance(c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
