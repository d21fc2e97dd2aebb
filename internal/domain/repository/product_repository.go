package repository

import "github.com/jhoicas/inventario-api/internal/domain/entity"

// ProductWithNames es un producto junto a los nombres de su categoría y
// subcategoría y el username del creador.
type ProductWithNames struct {
	entity.Product
	CategoryName      string
	SubcategoryName   string
	CreatedByUsername string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*ProductWithNames, error)
	Update(product *entity.Product) error
	List(onlyActive bool) ([]*ProductWithNames, error)
	ListBySubcategory(subcategoryID string) ([]*ProductWithNames, error)
	// Deactivate marca isActive=false sin eliminar la fila.
	Deactivate(id string) error
	Delete(id string) error
}
