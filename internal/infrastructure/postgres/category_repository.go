package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id, name, description, active, created_at, updated_at`

// Create persiste una nueva categoría. Nombre repetido se normaliza a ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Active,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get category by name")
}

// Update actualiza una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Active, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías ordenadas por fecha de creación descendente.
func (r *CategoryRepo) List(onlyActive bool) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + ` FROM categories
		WHERE NOT $1 OR active
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
