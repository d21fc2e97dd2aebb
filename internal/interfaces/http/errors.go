package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// respondError traduce los errores centinela del dominio a respuestas HTTP.
// Los errores no clasificados se loguean con detalle y salen como 500 con
// mensaje genérico: el detalle interno nunca viaja al cliente.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrTokenExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
	case errors.Is(err, domain.ErrSubcategoryMismatch):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "La subcategoría no existe o no pertenece a la categoría indicada"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	if log != nil {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
