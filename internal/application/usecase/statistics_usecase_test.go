package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-api/internal/application/usecase"
)

// fakeStatisticsRepo cuenta sobre el almacén en memoria; errUsers permite
// simular el fallo de una de las consultas.
type fakeStatisticsRepo struct {
	store    *fakeStore
	errUsers error
}

func (r *fakeStatisticsRepo) CountUsers(ctx context.Context) (int64, error) {
	if r.errUsers != nil {
		return 0, r.errUsers
	}
	return int64(len(r.store.users)), nil
}

func (r *fakeStatisticsRepo) CountCategories(ctx context.Context) (int64, error) {
	return int64(len(r.store.categories)), nil
}

func (r *fakeStatisticsRepo) CountSubcategories(ctx context.Context) (int64, error) {
	return int64(len(r.store.subcategories)), nil
}

func (r *fakeStatisticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(r.store.products)), nil
}

func TestStatisticsGet_ConteosTotales(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	seedUsers(store)
	uc := usecase.NewStatisticsUseCase(&fakeStatisticsRepo{store: store})

	out, err := uc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.TotalUsers)
	assert.Equal(t, int64(1), out.TotalCategories)
	assert.Equal(t, int64(2), out.TotalSubcategories)
	assert.Equal(t, int64(3), out.TotalProducts)
}

// Los conteos incluyen filas inactivas: son totales, no listados visibles.
func TestStatisticsGet_IncluyeInactivos(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	store.products["prod-cola"].IsActive = false
	uc := usecase.NewStatisticsUseCase(&fakeStatisticsRepo{store: store})

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalProducts)
}

func TestStatisticsGet_PropagaErrores(t *testing.T) {
	store := newFakeStore()
	boom := errors.New("conexión perdida")
	uc := usecase.NewStatisticsUseCase(&fakeStatisticsRepo{store: store, errUsers: boom})

	_, err := uc.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
