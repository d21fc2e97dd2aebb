package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCategoryRequest parche parcial de una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Count int                `json:"count"`
	Data  []CategoryResponse `json:"data"`
}

// DeactivateCascadeResponse salida de un soft delete en cascada: cuántas
// filas hijas pasaron de activas a inactivas en esta llamada.
type DeactivateCascadeResponse struct {
	Message                  string `json:"message"`
	SubcategoriesDeactivated int64  `json:"subcategories_deactivated"`
	ProductsDeactivated      int64  `json:"products_deactivated"`
}

// DeleteCascadeResponse salida de un hard delete en cascada. Irreversible.
type DeleteCascadeResponse struct {
	Message              string `json:"message"`
	SubcategoriesDeleted int64  `json:"subcategories_deleted"`
	ProductsDeleted      int64  `json:"products_deleted"`
}
