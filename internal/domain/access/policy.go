// Package access contiene las reglas de visibilidad y mutación por rol.
// Son predicados puros sobre la identidad del solicitante y el recurso
// objetivo: no consultan la base de datos ni conocen HTTP.
package access

import (
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
)

// Identity es la tupla {id, rol, email} recuperada de un token verificado.
// Representa al solicitante durante una petición.
type Identity struct {
	UserID string
	Role   entity.Role
	Email  string
}

// CanViewUser decide si el solicitante puede ver el registro de target.
//   - auxiliar: solo su propio registro.
//   - coordinador: cualquiera excepto registros con rol admin.
//   - admin: sin restricción.
func CanViewUser(caller Identity, target *entity.User) error {
	switch caller.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleCoordinador:
		if target.Role == entity.RoleAdmin {
			return domain.ErrForbidden
		}
		return nil
	case entity.RoleAuxiliar:
		if caller.UserID != target.ID {
			return domain.ErrForbidden
		}
		return nil
	}
	return domain.ErrForbidden
}

// CanUpdateUser decide si el solicitante puede aplicar un parche sobre el
// usuario targetID. changesRole indica si el parche incluye el campo role.
//   - auxiliar: solo su propio registro y nunca su rol.
//   - coordinador: cualquiera excepto registros admin.
//   - admin: sin restricción.
// targetRole es el rol actual del registro objetivo.
func CanUpdateUser(caller Identity, targetID string, targetRole entity.Role, changesRole bool) error {
	switch caller.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleCoordinador:
		if targetRole == entity.RoleAdmin {
			return domain.ErrForbidden
		}
		return nil
	case entity.RoleAuxiliar:
		if caller.UserID != targetID {
			return domain.ErrForbidden
		}
		if changesRole {
			return domain.ErrForbidden
		}
		return nil
	}
	return domain.ErrForbidden
}

// CanDeleteUser decide si el solicitante puede desactivar o eliminar a target.
// Solo admin borra usuarios; un admin sí puede actuar sobre otro admin, pero
// un no-admin sobre un registro admin es siempre Forbidden.
func CanDeleteUser(caller Identity, target *entity.User) error {
	if caller.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// OwnRecordOnly indica si el listado de usuarios debe restringirse al propio
// registro del solicitante (regla de visibilidad del rol auxiliar).
func OwnRecordOnly(caller Identity) bool {
	return caller.Role == entity.RoleAuxiliar
}

// HidesProductCreator indica si el listado de productos debe ocultar el campo
// createdBy para este solicitante.
func HidesProductCreator(caller Identity) bool {
	return caller.Role == entity.RoleAuxiliar
}
