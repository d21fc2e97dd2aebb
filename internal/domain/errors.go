package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada handler los traduce
// a su código HTTP; los repositorios los producen al normalizar errores de pgx.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrDuplicate    = errors.New("ya existe un registro con ese nombre")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrTokenExpired = errors.New("token de autenticación expirado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrSubcategoryMismatch cubre los dos fallos de la relación
	// categoría→subcategoría: la subcategoría no existe, o existe pero su
	// campo category apunta a otra categoría.
	ErrSubcategoryMismatch = errors.New("la subcategoría no existe o no pertenece a la categoría indicada")
)
