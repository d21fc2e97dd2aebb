package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// SubcategoryHandler maneja las peticiones HTTP para Subcategory (protegido).
type SubcategoryHandler struct {
	uc  *usecase.SubcategoryUseCase
	log *logger.Logger
}

// NewSubcategoryHandler construye el handler.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase, log *logger.Logger) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "name, description, category"
// @Success      201   {object}  dto.SubcategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        includeInactive  query  bool  false  "Incluir subcategorías desactivadas"
// @Success      200  {object}  dto.SubcategoryListResponse
// @Router       /api/subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("includeInactive", false)
	out, err := h.uc.List(includeInactive)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubcategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos de una subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id}/products [get]
func (h *SubcategoryHandler) ListProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ListProducts(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubcategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar o eliminar subcategoría en cascada
// @Description  Sin hardDelete desactiva la subcategoría y sus productos; con
// @Description  hardDelete=true los elimina físicamente.
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID de la subcategoría"
// @Param        hardDelete  query  bool    false  "true = borrado físico"
// @Success      200  {object}  dto.DeactivateCascadeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if c.QueryBool("hardDelete", false) {
		out, err := h.uc.Delete(c.Context(), id)
		if err != nil {
			return respondError(c, h.log, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Deactivate(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
