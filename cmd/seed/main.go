// seed crea el usuario administrador inicial si no existe todavía.
//
// Uso: go run ./cmd/seed
// Credenciales vía env: SEED_ADMIN_USERNAME, SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD.
// Es idempotente: si el username o el email ya están registrados no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	email := strings.ToLower(envOr("SEED_ADMIN_EMAIL", "admin@inventario.local"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es requerido")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Reconcile(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "reconciliación de esquema: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByUsernameOrEmail(username, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("el administrador %q ya existe, nada que hacer\n", existing.Username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Auth.BcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear administrador: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("administrador %q creado (%s)\n", admin.Username, admin.ID)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
