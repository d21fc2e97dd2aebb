package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/cascade"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

// SubcategoryUseCase CRUD de subcategorías. Mantiene el invariante de
// existencia del padre: CategoryID debe resolver a una categoría existente al
// crear y cada vez que se reasigna.
type SubcategoryUseCase struct {
	repo         repository.SubcategoryRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	runner       CascadeRunner
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, runner CascadeRunner) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, categoryRepo: categoryRepo, productRepo: productRepo, runner: runner}
}

// Create crea una subcategoría bajo una categoría existente. Categoría
// inexistente falla con ErrNotFound; nombre repetido con ErrDuplicate.
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CategoryID:  in.Category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(subcategory); err != nil {
		return nil, err
	}
	resp := toSubcategoryResponse(subcategory)
	resp.CategoryName = parent.Name
	return resp, nil
}

// List retorna las subcategorías con el nombre de su categoría padre.
func (uc *SubcategoryUseCase) List(includeInactive bool) (*dto.SubcategoryListResponse, error) {
	subcategories, err := uc.repo.List(!includeInactive)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for _, s := range subcategories {
		resp := toSubcategoryResponse(&s.Subcategory)
		resp.CategoryName = s.CategoryName
		data = append(data, *resp)
	}
	return &dto.SubcategoryListResponse{Count: len(data), Data: data}, nil
}

// GetByID retorna una subcategoría por id.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSubcategoryResponse(subcategory)
	if parent, err := uc.categoryRepo.GetByID(subcategory.CategoryID); err == nil && parent != nil {
		resp.CategoryName = parent.Name
	}
	return resp, nil
}

// Update aplica un parche parcial. Si el parche reasigna la categoría, la
// nueva debe existir; un rename que colisione falla con ErrDuplicate.
func (uc *SubcategoryUseCase) Update(id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		parent, err := uc.categoryRepo.GetByID(*in.Category)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		subcategory.CategoryID = *in.Category
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != subcategory.Name {
			existing, err := uc.repo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		subcategory.Name = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		subcategory.Description = description
	}
	if in.Active != nil {
		subcategory.Active = *in.Active
	}
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// Deactivate ejecuta el soft delete en cascada sobre la subcategoría y sus productos.
func (uc *SubcategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.DeactivateCascadeResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	result, err := uc.runner.Execute(ctx, cascade.DeactivateSubcategory(id))
	if err != nil {
		return nil, err
	}
	return &dto.DeactivateCascadeResponse{
		Message:                  "subcategoría desactivada correctamente",
		SubcategoriesDeactivated: result.Subcategories,
		ProductsDeactivated:      result.Products,
	}, nil
}

// Delete ejecuta el hard delete en cascada: primero los productos de la
// subcategoría, luego la subcategoría. Irreversible.
func (uc *SubcategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeleteCascadeResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	result, err := uc.runner.Execute(ctx, cascade.DeleteSubcategory(id))
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCascadeResponse{
		Message:              "subcategoría y productos eliminados permanentemente",
		SubcategoriesDeleted: result.Subcategories,
		ProductsDeleted:      result.Products,
	}, nil
}

// ListProducts retorna los productos que pertenecen a una subcategoría.
func (uc *SubcategoryUseCase) ListProducts(id string) (*dto.ProductListResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListBySubcategory(id)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *toProductResponse(p, false))
	}
	return &dto.ProductListResponse{Count: len(data), Data: data}, nil
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	return &dto.SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.CategoryID,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
