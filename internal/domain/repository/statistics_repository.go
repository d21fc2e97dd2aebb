package repository

import "context"

// StatisticsRepository expone los conteos totales por colección. Las cuatro
// consultas son independientes y de solo lectura, así que el caso de uso las
// lanza en paralelo.
type StatisticsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountSubcategories(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
}
