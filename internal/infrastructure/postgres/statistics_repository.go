package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo conteos totales por tabla, sin filtro de activos.
type StatisticsRepo struct {
	q Querier
}

// NewStatisticsRepository construye el adaptador.
func NewStatisticsRepository(q Querier) *StatisticsRepo {
	return &StatisticsRepo{q: q}
}

func (r *StatisticsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

func (r *StatisticsRepo) CountCategories(ctx context.Context) (int64, error) {
	return r.count(ctx, "categories")
}

func (r *StatisticsRepo) CountSubcategories(ctx context.Context) (int64, error) {
	return r.count(ctx, "subcategories")
}

func (r *StatisticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, "products")
}

// count arma el nombre de tabla por concatenación; solo se llama con los
// cuatro literales de arriba, nunca con entrada del usuario.
func (r *StatisticsRepo) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
