package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain/access"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/pkg/jwt"
)

// Locals keys para la identidad del solicitante en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalEmail  = "email"
)

// AuthMiddleware valida el token JWT y deja la identidad {id, rol, email} en
// c.Locals. El token puede venir en "Authorization: Bearer <token>" o en el
// header legado "x-access-token"; Authorization tiene prioridad.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token de autenticación requerido"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if authHeader := c.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get("x-access-token"))
}

// RequireRole permite continuar solo si el rol del token está en la lista.
// Debe montarse después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "identidad sin rol"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para esta operación"})
	}
}

// GetIdentity devuelve la identidad completa del contexto (después del
// middleware de auth).
func GetIdentity(c *fiber.Ctx) access.Identity {
	return access.Identity{
		UserID: GetUserID(c),
		Role:   GetRole(c),
		Email:  getLocalString(c, LocalEmail),
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return getLocalString(c, LocalUserID)
}

// GetRole devuelve el rol del contexto. Cadena vacía si no hay identidad o el
// rol del token no es uno de los conocidos.
func GetRole(c *fiber.Ctx) entity.Role {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	role, ok := entity.ParseRole(s)
	if !ok {
		return ""
	}
	return role
}

func getLocalString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
