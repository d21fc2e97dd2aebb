package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// UserHandler maneja las peticiones HTTP para User (protegido).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        includeInactive  query  bool  false  "Incluir usuarios desactivados"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	caller := GetIdentity(c)
	includeInactive := c.QueryBool("includeInactive", false)
	out, err := h.uc.List(caller, includeInactive)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetIdentity(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetIdentity(c), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Desactivar o eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del usuario"
// @Param        hardDelete  query  bool    false  "true = borrado físico"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	hardDelete := c.QueryBool("hardDelete", false)
	if err := h.uc.Delete(GetIdentity(c), id, hardDelete); err != nil {
		return respondError(c, h.log, err)
	}
	msg := "usuario desactivado correctamente"
	if hardDelete {
		msg = "usuario eliminado correctamente"
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
