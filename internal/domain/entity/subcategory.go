package entity

import "time"

// Subcategory pertenece a exactamente una Category.
// CategoryID debe resolver a una categoría existente al crear y al reasignar.
type Subcategory struct {
	ID          string
	Name        string // único global
	Description string
	CategoryID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
