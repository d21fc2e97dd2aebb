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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

const subcategoryColumns = `id, name, description, category_id, active, created_at, updated_at`

// Create persiste una nueva subcategoría. Nombre repetido se normaliza a ErrDuplicate.
func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (` + subcategoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		subcategory.Active, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get subcategory")
}

// GetByName obtiene una subcategoría por nombre exacto.
func (r *SubcategoryRepo) GetByName(name string) (*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name), "get subcategory by name")
}

// GetByIDAndCategory retorna la subcategoría solo si pertenece a la categoría
// indicada; nil en cualquier otro caso.
func (r *SubcategoryRepo) GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error) {
	query := `SELECT ` + subcategoryColumns + ` FROM subcategories WHERE id = $1 AND category_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, categoryID), "get subcategory by id and category")
}

// ListIDsByCategory retorna los ids de las subcategorías de una categoría.
func (r *SubcategoryRepo) ListIDsByCategory(categoryID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM subcategories WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategory ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan subcategory id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Update actualiza una subcategoría.
func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET name = $2, description = $3, category_id = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		subcategory.Active, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// List lista subcategorías con el nombre de su categoría padre, ordenadas por
// fecha de creación descendente.
func (r *SubcategoryRepo) List(onlyActive bool) ([]*repository.SubcategoryWithCategory, error) {
	query := `
		SELECT s.id, s.name, s.description, s.category_id, s.active, s.created_at, s.updated_at, c.name
		FROM subcategories s
		JOIN categories c ON c.id = s.category_id
		WHERE NOT $1 OR s.active
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*repository.SubcategoryWithCategory
	for rows.Next() {
		var s repository.SubcategoryWithCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt, &s.CategoryName); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SubcategoryRepo) scanOne(row pgx.Row, op string) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
