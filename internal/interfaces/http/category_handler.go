package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        includeInactive  query  bool  false  "Incluir categorías desactivadas"
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	includeInactive := c.QueryBool("includeInactive", false)
	out, err := h.uc.List(includeInactive)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
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

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCategoryRequest
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
// @Summary      Desactivar o eliminar categoría en cascada
// @Description  Sin hardDelete desactiva la categoría y sus subcategorías y
// @Description  productos; con hardDelete=true los elimina físicamente. La
// @Description  respuesta reporta cuántos hijos fueron afectados.
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID de la categoría"
// @Param        hardDelete  query  bool    false  "true = borrado físico"
// @Success      200  {object}  dto.DeactivateCascadeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
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
