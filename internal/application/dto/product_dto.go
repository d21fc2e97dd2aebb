package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y Stock son
// punteros para distinguir "campo ausente" de cero.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int             `json:"stock" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Subcategory string           `json:"subcategory" validate:"required"`
}

// UpdateProductRequest parche parcial; si Category o Subcategory están
// presentes se revalida la relación de pertenencia con la categoría efectiva.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse salida de un producto con los nombres de sus padres.
// CreatedBy se omite para solicitantes con rol auxiliar.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Category        string          `json:"category"`
	CategoryName    string          `json:"category_name,omitempty"`
	Subcategory     string          `json:"subcategory"`
	SubcategoryName string          `json:"subcategory_name,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Count int               `json:"count"`
	Data  []ProductResponse `json:"data"`
}
