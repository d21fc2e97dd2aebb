package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

// StatisticsUseCase agrega los conteos totales de las cuatro colecciones.
type StatisticsUseCase struct {
	repo repository.StatisticsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

type countResult struct {
	n   int64
	err error
}

// Get lanza los cuatro conteos en paralelo (son consultas independientes y de
// solo lectura) y arma la respuesta.
func (uc *StatisticsUseCase) Get(ctx context.Context) (*dto.StatisticsResponse, error) {
	users := make(chan countResult, 1)
	products := make(chan countResult, 1)
	categories := make(chan countResult, 1)
	subcategories := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountUsers(ctx)
		users <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountProducts(ctx)
		products <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountCategories(ctx)
		categories <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountSubcategories(ctx)
		subcategories <- countResult{n, err}
	}()

	u := <-users
	p := <-products
	c := <-categories
	s := <-subcategories

	if u.err != nil {
		return nil, fmt.Errorf("estadísticas: usuarios: %w", u.err)
	}
	if p.err != nil {
		return nil, fmt.Errorf("estadísticas: productos: %w", p.err)
	}
	if c.err != nil {
		return nil, fmt.Errorf("estadísticas: categorías: %w", c.err)
	}
	if s.err != nil {
		return nil, fmt.Errorf("estadísticas: subcategorías: %w", s.err)
	}

	return &dto.StatisticsResponse{
		TotalUsers:         u.n,
		TotalProducts:      p.n,
		TotalCategories:    c.n,
		TotalSubcategories: s.n,
	}, nil
}
