package dto

import "time"

// CreateSubcategoryRequest entrada para crear una subcategoría bajo una categoría.
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// UpdateSubcategoryRequest parche parcial; si Category está presente se
// revalida que la nueva categoría exista antes de aplicar.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Active      *bool   `json:"active"`
}

// SubcategoryResponse salida de una subcategoría con el nombre de su categoría padre.
type SubcategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	CategoryName string    `json:"category_name,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SubcategoryListResponse listado de subcategorías.
type SubcategoryListResponse struct {
	Count int                   `json:"count"`
	Data  []SubcategoryResponse `json:"data"`
}
