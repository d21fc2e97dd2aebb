package entity

import "strings"

// Role es el rol de un usuario. Enumeración cerrada: cualquier comparación
// se hace contra las constantes, nunca contra strings sueltos.
type Role string

// Roles válidos del sistema.
const (
	RoleAdmin       Role = "admin"
	RoleCoordinador Role = "coordinador"
	RoleAuxiliar    Role = "auxiliar"
)

// ParseRole normaliza un rol recibido del exterior. Es case-insensitive
// porque los clientes históricos enviaban "Auxiliar" y "auxiliar" indistintamente.
// Retorna ok=false si el valor no corresponde a ningún rol.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCoordinador:
		return RoleCoordinador, true
	case RoleAuxiliar:
		return RoleAuxiliar, true
	}
	return "", false
}

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCoordinador || r == RoleAuxiliar
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }
