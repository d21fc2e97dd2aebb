package repository

import "github.com/jhoicas/inventario-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetByName busca por nombre exacto (ya recortado); usado para el
	// pre-chequeo de duplicados antes de insertar o renombrar.
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(onlyActive bool) ([]*entity.Category, error)
}
