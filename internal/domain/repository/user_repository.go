package repository

import "github.com/jhoicas/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsernameOrEmail busca por cualquiera de los dos identificadores;
	// el llamador puede enviar uno solo o ambos (login acepta username o email).
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	Update(user *entity.User) error
	// List retorna los usuarios; si onlyActive es true filtra los desactivados.
	// Si ownerID no está vacío restringe el resultado a ese único registro.
	List(onlyActive bool, ownerID string) ([]*entity.User, error)
	// Deactivate marca active=false sin eliminar la fila.
	Deactivate(id string) error
	Delete(id string) error
}
