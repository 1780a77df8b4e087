package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/usecase"
)

// AmbulanceHandler maneja las peticiones HTTP para la flota (protegido).
type AmbulanceHandler struct {
	uc *usecase.AmbulanceUseCase
}

// NewAmbulanceHandler construye el handler.
func NewAmbulanceHandler(uc *usecase.AmbulanceUseCase) *AmbulanceHandler {
	return &AmbulanceHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta una unidad
// @Tags         ambulances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAmbulanceRequest  true  "unit_id"
// @Success      201   {object}  dto.AmbulanceResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ambulances [post]
func (h *AmbulanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAmbulanceRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad por ID
// @Tags         ambulances
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.AmbulanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ambulances/{id} [get]
func (h *AmbulanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar unidad
// @Tags         ambulances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la unidad"
// @Param        body  body  dto.UpdateAmbulanceRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.AmbulanceResponse
// @Router       /api/ambulances/{id} [put]
func (h *AmbulanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAmbulanceRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar unidades
// @Tags         ambulances
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.AmbulanceListResponse
// @Router       /api/ambulances [get]
func (h *AmbulanceHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Inventario a bordo de una unidad
// @Tags         ambulances
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {array}  dto.AmbulanceStockItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ambulances/{id}/stock [get]
func (h *AmbulanceHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar unidad
// @Tags         ambulances
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Router       /api/ambulances/{id} [delete]
func (h *AmbulanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
