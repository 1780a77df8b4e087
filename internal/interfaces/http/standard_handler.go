package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/usecase"
)

// StandardHandler maneja el catálogo de estándares de dotación.
// Lectura para todos los roles; mutaciones solo admin (middleware en el router).
type StandardHandler struct {
	uc *usecase.StandardUseCase
}

// NewStandardHandler construye el handler.
func NewStandardHandler(uc *usecase.StandardUseCase) *StandardHandler {
	return &StandardHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar estándar de dotación
// @Tags         standards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStandardRequest  true  "name, category, quantity"
// @Success      201   {object}  dto.StandardResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/standards [post]
func (h *StandardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStandardRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad recomendada
// @Tags         standards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del estándar"
// @Param        body  body  dto.UpdateStandardRequest  true  "quantity"
// @Success      200   {object}  dto.StandardResponse
// @Router       /api/standards/{id} [put]
func (h *StandardHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateStandardRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateQuantity(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estándar no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo de estándares
// @Tags         standards
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por sección"
// @Success      200       {object}  dto.StandardListResponse
// @Router       /api/standards [get]
func (h *StandardHandler) List(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		out, err := h.uc.ListByCategory(category)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estándar
// @Tags         standards
// @Security     Bearer
// @Param        id  path  string  true  "ID del estándar"
// @Success      204
// @Router       /api/standards/{id} [delete]
func (h *StandardHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
