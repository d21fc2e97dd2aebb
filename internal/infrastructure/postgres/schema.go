package postgres

import (
	"context"
	"fmt"
)

// Reconcile crea las tablas y los índices únicos si no existen. Se ejecuta una
// vez al arranque: la unicidad de nombres vive en el almacén como constraint,
// y la capa de aplicación solo la pre-chequea para dar mejores mensajes.
func Reconcile(ctx context.Context, q Querier) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			username      TEXT NOT NULL,
			email         TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'auxiliar',
			active        BOOLEAN NOT NULL DEFAULT true,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			active      BOOLEAN NOT NULL DEFAULT true,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS categories_name_key ON categories (name)`,

		`CREATE TABLE IF NOT EXISTS subcategories (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			category_id UUID NOT NULL REFERENCES categories (id),
			active      BOOLEAN NOT NULL DEFAULT true,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS subcategories_name_key ON subcategories (name)`,
		`CREATE INDEX IF NOT EXISTS subcategories_category_idx ON subcategories (category_id)`,

		`CREATE TABLE IF NOT EXISTS products (
			id             UUID PRIMARY KEY,
			name           TEXT NOT NULL,
			description    TEXT NOT NULL,
			price          NUMERIC(14,2) NOT NULL,
			stock          INTEGER NOT NULL,
			category_id    UUID NOT NULL REFERENCES categories (id),
			subcategory_id UUID NOT NULL REFERENCES subcategories (id),
			created_by     UUID NULL REFERENCES users (id) ON DELETE SET NULL,
			is_active      BOOLEAN NOT NULL DEFAULT true,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS products_category_idx ON products (category_id)`,
		`CREATE INDEX IF NOT EXISTS products_subcategory_idx ON products (subcategory_id)`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("reconciliar esquema: %w", err)
		}
	}
	return nil
}
