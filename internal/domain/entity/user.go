package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	Email        string // único, siempre en minúsculas
	PasswordHash string // bcrypt hash, nunca se serializa hacia los clientes
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
