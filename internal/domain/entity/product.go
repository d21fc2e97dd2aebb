package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es la hoja de la jerarquía. Referencia su Subcategory y, de forma
// desnormalizada, la Category; la cadena autoritativa es
// Category → Subcategory → Product, así que la subcategoría referenciada debe
// pertenecer a la categoría referenciada.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int
	CategoryID    string
	SubcategoryID string
	CreatedBy     string // ID del usuario creador; vacío si no se conoce
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
