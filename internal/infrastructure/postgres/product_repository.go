package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// productSelect trae el producto con los nombres de sus padres y el username
// del creador (el equivalente del populate del almacén original).
const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.subcategory_id,
	       COALESCE(p.created_by::text, ''), p.is_active, p.created_at, p.updated_at,
	       c.name, s.name, COALESCE(u.username, '')
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN subcategories s ON s.id = p.subcategory_id
	LEFT JOIN users u ON u.id = p.created_by`

// Create persiste un nuevo producto. CreatedBy vacío se guarda como NULL.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, subcategory_id, created_by, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.CreatedBy, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con los nombres de sus padres.
func (r *ProductRepo) GetByID(id string) (*repository.ProductWithNames, error) {
	query := productSelect + ` WHERE p.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5,
			category_id = $6, subcategory_id = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.SubcategoryID, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos ordenados por fecha de creación descendente.
func (r *ProductRepo) List(onlyActive bool) ([]*repository.ProductWithNames, error) {
	query := productSelect + `
	WHERE NOT $1 OR p.is_active
	ORDER BY p.created_at DESC`
	return r.scanMany(query, onlyActive)
}

// ListBySubcategory lista los productos de una subcategoría, activos o no.
func (r *ProductRepo) ListBySubcategory(subcategoryID string) ([]*repository.ProductWithNames, error) {
	query := productSelect + `
	WHERE p.subcategory_id = $1
	ORDER BY p.created_at DESC`
	return r.scanMany(query, subcategoryID)
}

// Deactivate marca un producto como inactivo.
func (r *ProductRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanMany(query string, args ...any) ([]*repository.ProductWithNames, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductWithNames
	for rows.Next() {
		var p repository.ProductWithNames
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.CategoryID, &p.SubcategoryID, &p.CreatedBy, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.SubcategoryName, &p.CreatedByUsername); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*repository.ProductWithNames, error) {
	var p repository.ProductWithNames
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.CategoryID, &p.SubcategoryID, &p.CreatedBy, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.SubcategoryName, &p.CreatedByUsername)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
