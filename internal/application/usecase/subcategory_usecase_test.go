package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/internal/domain"
)

func newSubcategoryUseCase(store *fakeStore) *usecase.SubcategoryUseCase {
	return usecase.NewSubcategoryUseCase(
		&fakeSubcategoryRepo{store: store},
		&fakeCategoryRepo{store: store},
		&fakeProductRepo{store: store},
		&fakeCascadeRunner{store: store},
	)
}

func TestSubcategoryCreate_PadreDebeExistir(t *testing.T) {
	store := newFakeStore()
	seedCategory(store, "cat-bebidas", "Bebidas")
	uc := newSubcategoryUseCase(store)

	out, err := uc.Create(dto.CreateSubcategoryRequest{
		Name: "Gaseosas", Description: "Con gas", Category: "cat-bebidas",
	})
	require.NoError(t, err)
	assert.Equal(t, "cat-bebidas", out.Category)
	assert.Equal(t, "Bebidas", out.CategoryName)
	assert.True(t, out.Active)

	_, err = uc.Create(dto.CreateSubcategoryRequest{
		Name: "Jugos", Description: "Sin gas", Category: "cat-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubcategoryCreate_NombreDuplicado(t *testing.T) {
	store := newFakeStore()
	seedCategory(store, "cat-bebidas", "Bebidas")
	seedSubcategory(store, "sub-gaseosas", "Gaseosas", "cat-bebidas")
	uc := newSubcategoryUseCase(store)

	_, err := uc.Create(dto.CreateSubcategoryRequest{
		Name: "Gaseosas", Description: "otra", Category: "cat-bebidas",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSubcategoryList_IncluyeNombreDelPadre(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	store.subcategories["sub-jugos"].Active = false
	uc := newSubcategoryUseCase(store)

	out, err := uc.List(false)
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "Gaseosas", out.Data[0].Name)
	assert.Equal(t, "Bebidas", out.Data[0].CategoryName)

	out, err = uc.List(true)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
}

func TestSubcategoryUpdate_ReasignaCategoriaExistente(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	seedCategory(store, "cat-aseo", "Aseo")
	uc := newSubcategoryUseCase(store)

	out, err := uc.Update("sub-jugos", dto.UpdateSubcategoryRequest{Category: strptr("cat-aseo")})
	require.NoError(t, err)
	assert.Equal(t, "cat-aseo", out.Category)

	_, err = uc.Update("sub-jugos", dto.UpdateSubcategoryRequest{Category: strptr("cat-fantasma")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubcategoryDeactivate_CascadaSobreSusProductos(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	uc := newSubcategoryUseCase(store)

	out, err := uc.Deactivate(context.Background(), "sub-gaseosas")
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.SubcategoriesDeactivated, "la propia subcategoría")
	assert.Equal(t, int64(2), out.ProductsDeactivated)

	// La categoría padre y la subcategoría hermana no se tocan.
	assert.True(t, store.categories["cat-bebidas"].Active)
	assert.True(t, store.subcategories["sub-jugos"].Active)
	assert.True(t, store.products["prod-mango"].IsActive)
}

func TestSubcategoryDeactivate_Idempotente(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	uc := newSubcategoryUseCase(store)

	_, err := uc.Deactivate(context.Background(), "sub-gaseosas")
	require.NoError(t, err)

	out, err := uc.Deactivate(context.Background(), "sub-gaseosas")
	require.NoError(t, err)
	assert.Zero(t, out.SubcategoriesDeactivated)
	assert.Zero(t, out.ProductsDeactivated)
}

func TestSubcategoryDelete_EliminaSoloSuRama(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	uc := newSubcategoryUseCase(store)

	out, err := uc.Delete(context.Background(), "sub-gaseosas")
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.SubcategoriesDeleted)
	assert.Equal(t, int64(2), out.ProductsDeleted)

	assert.NotContains(t, store.subcategories, "sub-gaseosas")
	assert.NotContains(t, store.products, "prod-cola")
	assert.Contains(t, store.subcategories, "sub-jugos")
	assert.Contains(t, store.products, "prod-mango")
	assert.Contains(t, store.categories, "cat-bebidas")
}

func TestSubcategoryListProducts(t *testing.T) {
	store := newFakeStore()
	seedTree(store)
	uc := newSubcategoryUseCase(store)

	out, err := uc.ListProducts("sub-gaseosas")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	for _, p := range out.Data {
		assert.Equal(t, "sub-gaseosas", p.Subcategory)
		assert.Equal(t, "Gaseosas", p.SubcategoryName)
	}

	_, err = uc.ListProducts("sub-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
