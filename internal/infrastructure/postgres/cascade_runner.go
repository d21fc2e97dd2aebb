package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/internal/domain/cascade"
)

var _ usecase.CascadeRunner = (*CascadeRunner)(nil)

// CascadeRunner ejecuta un plan de cascada completo dentro de una transacción
// PostgreSQL: o se aplica todo el plan o nada. Los pasos de desactivación solo
// tocan filas activas, así que RowsAffected cuenta únicamente las filas que
// cambiaron de estado en esta ejecución.
type CascadeRunner struct {
	pool *pgxpool.Pool
}

// NewCascadeRunner construye el runner con el pool.
func NewCascadeRunner(pool *pgxpool.Pool) *CascadeRunner {
	return &CascadeRunner{pool: pool}
}

// Execute corre cada paso del plan en orden y acumula los conteos de filas
// hijas afectadas. Commit al final; Rollback ante cualquier fallo.
func (r *CascadeRunner) Execute(ctx context.Context, plan cascade.Plan) (cascade.Result, error) {
	var result cascade.Result

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, step := range plan.Steps {
		sql, args, err := stepSQL(step)
		if err != nil {
			return cascade.Result{}, err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return cascade.Result{}, fmt.Errorf("cascada %s %s: %w", step.Op, step.Target, err)
		}
		switch step.Target {
		case cascade.TargetSubcategories:
			result.Subcategories += tag.RowsAffected()
		case cascade.TargetProducts:
			result.Products += tag.RowsAffected()
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return cascade.Result{}, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}

// stepSQL traduce un paso {colección, operación, filtro} a su sentencia SQL.
func stepSQL(step cascade.Step) (string, []any, error) {
	table, activeCol, err := targetTable(step.Target)
	if err != nil {
		return "", nil, err
	}

	where, args, err := filterClause(step.Filter)
	if err != nil {
		return "", nil, fmt.Errorf("cascada sobre %s: %w", step.Target, err)
	}

	switch step.Op {
	case cascade.OpDeactivate:
		// El guard "AND activo" hace el paso idempotente en los conteos:
		// las filas ya inactivas no se tocan ni se cuentan.
		return fmt.Sprintf(`UPDATE %s SET %s = false, updated_at = now() WHERE %s AND %s`,
			table, activeCol, where, activeCol), args, nil
	case cascade.OpDelete:
		return fmt.Sprintf(`DELETE FROM %s WHERE %s`, table, where), args, nil
	}
	return "", nil, fmt.Errorf("operación de cascada desconocida: %q", step.Op)
}

func targetTable(t cascade.Target) (table, activeCol string, err error) {
	switch t {
	case cascade.TargetCategories:
		return "categories", "active", nil
	case cascade.TargetSubcategories:
		return "subcategories", "active", nil
	case cascade.TargetProducts:
		return "products", "is_active", nil
	}
	return "", "", fmt.Errorf("colección de cascada desconocida: %q", t)
}

func filterClause(f cascade.Filter) (string, []any, error) {
	switch {
	case f.ID != "":
		return "id = $1", []any{f.ID}, nil
	case f.CategoryID != "":
		return "category_id = $1", []any{f.CategoryID}, nil
	case f.SubcategoryID != "":
		return "subcategory_id = $1", []any{f.SubcategoryID}, nil
	case len(f.SubcategoryIDs) > 0:
		return "subcategory_id = ANY($1)", []any{f.SubcategoryIDs}, nil
	}
	return "", nil, fmt.Errorf("filtro vacío")
}
