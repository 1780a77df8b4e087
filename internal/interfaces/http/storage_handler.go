package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchys-amb/ambutrack-api/internal/application/dto"
	"github.com/frenchys-amb/ambutrack-api/internal/application/usecase"
)

// StorageHandler maneja las peticiones HTTP del almacén central.
// Las mutaciones requieren rol admin (middleware en el router).
type StorageHandler struct {
	uc *usecase.StorageUseCase
}

// NewStorageHandler construye el handler.
func NewStorageHandler(uc *usecase.StorageUseCase) *StorageHandler {
	return &StorageHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un ítem en el almacén
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStorageItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.StorageItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/storage [post]
func (h *StorageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStorageItemRequest
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
// @Summary      Obtener ítem del almacén por ID
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StorageItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storage/{id} [get]
func (h *StorageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar ítem del almacén
// @Tags         storage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del ítem"
// @Param        body  body  dto.UpdateStorageItemRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.StorageItemResponse
// @Router       /api/storage/{id} [put]
func (h *StorageHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStorageItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar almacén central
// @Tags         storage
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        type      query  string  false  "Filtrar por tipo (equipment|medication)"
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.StorageItemListResponse
// @Router       /api/storage [get]
func (h *StorageHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	if itemType := c.Query("type"); itemType != "" {
		out, err := h.uc.ListByType(itemType, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Query("category"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem del almacén
// @Tags         storage
// @Security     Bearer
// @Param        id  path  string  true  "ID del ítem"
// @Success      204
// @Router       /api/storage/{id} [delete]
func (h *StorageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
