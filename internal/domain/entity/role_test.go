package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-api/internal/domain/entity"
)

func TestParseRole_Normaliza(t *testing.T) {
	casos := map[string]entity.Role{
		"admin":        entity.RoleAdmin,
		"Admin":        entity.RoleAdmin,
		"ADMIN":        entity.RoleAdmin,
		" coordinador": entity.RoleCoordinador,
		"Auxiliar":     entity.RoleAuxiliar,
		"auxiliar  ":   entity.RoleAuxiliar,
	}
	for in, want := range casos {
		got, ok := entity.ParseRole(in)
		assert.True(t, ok, "entrada %q", in)
		assert.Equal(t, want, got, "entrada %q", in)
	}
}

func TestParseRole_RechazaDesconocidos(t *testing.T) {
	for _, in := range []string{"", "gerente", "root", "administrador"} {
		_, ok := entity.ParseRole(in)
		assert.False(t, ok, "entrada %q", in)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, entity.RoleAdmin.Valid())
	assert.True(t, entity.RoleCoordinador.Valid())
	assert.True(t, entity.RoleAuxiliar.Valid())
	assert.False(t, entity.Role("gerente").Valid())
	assert.False(t, entity.Role("").Valid())
}
