package entity

import "time"

// Category es la raíz de la jerarquía Category → Subcategory → Product.
type Category struct {
	ID          string
	Name        string // único global, sin espacios al inicio/fin
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
