package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/access"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
)

func newUserUseCase(store *fakeStore) *usecase.UserUseCase {
	return usecase.NewUserUseCase(&fakeUserRepo{store: store}, bcrypt.MinCost)
}

func seedUsers(store *fakeStore) {
	seedUser(store, "u-admin", "admin", entity.RoleAdmin)
	seedUser(store, "u-coord", "coord", entity.RoleCoordinador)
	seedUser(store, "u-aux", "aux", entity.RoleAuxiliar)
	seedUser(store, "u-aux2", "aux2", entity.RoleAuxiliar)
}

func caller(id string, role entity.Role) access.Identity {
	return access.Identity{UserID: id, Role: role, Email: id + "@x.co"}
}

// ──────────────────────────────────────────────────────────────────────────────
// List: alcance por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestUserList_AuxiliarSoloVeSuRegistro(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	out, err := uc.List(caller("u-aux", entity.RoleAuxiliar), false)
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "u-aux", out.Data[0].ID)

	out, err = uc.List(caller("u-coord", entity.RoleCoordinador), false)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Count)

	out, err = uc.List(caller("u-admin", entity.RoleAdmin), false)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Count)
}

func TestUserList_InactivosSoloConFlag(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	store.users["u-aux2"].Active = false
	uc := newUserUseCase(store)

	out, err := uc.List(caller("u-admin", entity.RoleAdmin), false)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Count)

	out, err = uc.List(caller("u-admin", entity.RoleAdmin), true)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Count)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID: visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestUserGetByID_CoordinadorNoVeAdmins(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	_, err := uc.GetByID(caller("u-coord", entity.RoleCoordinador), "u-admin")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.GetByID(caller("u-coord", entity.RoleCoordinador), "u-aux")
	require.NoError(t, err)
	assert.Equal(t, "aux", out.Username)
}

func TestUserGetByID_AuxiliarSoloSuRegistro(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	out, err := uc.GetByID(caller("u-aux", entity.RoleAuxiliar), "u-aux")
	require.NoError(t, err)
	assert.Equal(t, "u-aux", out.ID)

	_, err = uc.GetByID(caller("u-aux", entity.RoleAuxiliar), "u-aux2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserGetByID_Inexistente(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	_, err := uc.GetByID(caller("u-admin", entity.RoleAdmin), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_HasheaYNormaliza(t *testing.T) {
	store := newFakeStore()
	uc := newUserUseCase(store)

	out, err := uc.Create(dto.CreateUserRequest{
		Username: " maria ", Email: "Maria@X.CO", Password: "secreta", Role: "coordinador",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, "maria@x.co", out.Email)
	assert.Equal(t, "coordinador", out.Role)

	stored := store.users[out.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))
}

func TestUserCreate_DuplicadoYRolInvalido(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	_, err := uc.Create(dto.CreateUserRequest{Username: "admin", Email: "nuevo@x.co", Password: "p"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateUserRequest{Username: "nuevo", Email: "n@x.co", Password: "p", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUserUpdate_AuxiliarNoCambiaSuRol(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	// Sus propios datos sí.
	out, err := uc.Update(caller("u-aux", entity.RoleAuxiliar), "u-aux", dto.UpdateUserRequest{
		Username: strptr("aux-renombrado"),
	})
	require.NoError(t, err)
	assert.Equal(t, "aux-renombrado", out.Username)

	// Su rol nunca.
	_, err = uc.Update(caller("u-aux", entity.RoleAuxiliar), "u-aux", dto.UpdateUserRequest{
		Role: strptr("admin"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Registros ajenos tampoco.
	_, err = uc.Update(caller("u-aux", entity.RoleAuxiliar), "u-aux2", dto.UpdateUserRequest{
		Username: strptr("x"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUpdate_CoordinadorNoTocaAdmins(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	_, err := uc.Update(caller("u-coord", entity.RoleCoordinador), "u-admin", dto.UpdateUserRequest{
		Username: strptr("x"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Update(caller("u-coord", entity.RoleCoordinador), "u-aux", dto.UpdateUserRequest{
		Role: strptr("coordinador"),
	})
	require.NoError(t, err)
	assert.Equal(t, "coordinador", out.Role)
}

func TestUserUpdate_RehasheaPassword(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	store.users["u-aux"].PasswordHash = "hash-viejo"
	uc := newUserUseCase(store)

	_, err := uc.Update(caller("u-admin", entity.RoleAdmin), "u-aux", dto.UpdateUserRequest{
		Password: strptr("nueva-clave"),
	})
	require.NoError(t, err)

	stored := store.users["u-aux"]
	assert.NotEqual(t, "hash-viejo", stored.PasswordHash)
	assert.NotEqual(t, "nueva-clave", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-clave")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_SoloAdmin(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	err := uc.Delete(caller("u-coord", entity.RoleCoordinador), "u-aux", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(caller("u-aux", entity.RoleAuxiliar), "u-aux2", true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserDelete_SoftDejaLaFila(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	require.NoError(t, uc.Delete(caller("u-admin", entity.RoleAdmin), "u-aux", false))
	stored := store.users["u-aux"]
	require.NotNil(t, stored)
	assert.False(t, stored.Active)
}

func TestUserDelete_HardEliminaLaFila(t *testing.T) {
	store := newFakeStore()
	seedUsers(store)
	uc := newUserUseCase(store)

	require.NoError(t, uc.Delete(caller("u-admin", entity.RoleAdmin), "u-aux", true))
	assert.NotContains(t, store.users, "u-aux")
}

func TestUserDelete_Inexistente(t *testing.T) {
	uc := newUserUseCase(newFakeStore())
	err := uc.Delete(caller("u-admin", entity.RoleAdmin), "no-existe", false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
