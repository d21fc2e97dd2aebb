package dto

import "time"

// SignupRequest entrada para registro público. Role es opcional; por defecto auxiliar.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin coordinador auxiliar"`
}

// LoginRequest entrada para login: username o email (al menos uno) + password.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest entrada para renovar el token de acceso.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse salida de signup y login: tokens + proyección del usuario sin password.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RefreshResponse salida de refresh: solo el nuevo token de acceso.
type RefreshResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest entrada para creación de usuarios por admin/coordinador
// (password en texto, se hashea en el caso de uso).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin coordinador auxiliar"`
}

// UpdateUserRequest parche parcial: solo los campos presentes se aplican.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin coordinador auxiliar"`
	Active   *bool   `json:"active"`
}

// UserResponse salida de un usuario. Nunca incluye password ni su hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Count int            `json:"count"`
	Data  []UserResponse `json:"data"`
}
