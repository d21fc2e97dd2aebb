package repository

import "github.com/jhoicas/inventario-api/internal/domain/entity"

// SubcategoryWithCategory es una subcategoría junto al nombre de su categoría
// padre (lo que en el almacén original se resolvía con populate).
type SubcategoryWithCategory struct {
	entity.Subcategory
	CategoryName string
}

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	GetByName(name string) (*entity.Subcategory, error)
	// GetByIDAndCategory retorna la subcategoría solo si su CategoryID
	// coincide; es la consulta que valida la relación de pertenencia.
	GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error)
	// ListIDsByCategory retorna los ids de las subcategorías de una categoría
	// (insumo del plan de cascada hard).
	ListIDsByCategory(categoryID string) ([]string, error)
	Update(subcategory *entity.Subcategory) error
	List(onlyActive bool) ([]*SubcategoryWithCategory, error)
}
