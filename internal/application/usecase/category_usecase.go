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

// CategoryUseCase CRUD de categorías y cascadas sobre su subárbol completo.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	subRepo repository.SubcategoryRepository
	runner  CascadeRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subRepo repository.SubcategoryRepository, runner CascadeRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, runner: runner}
}

// Create crea una categoría. Name y Description son obligatorios y se
// recortan; un nombre repetido falla con ErrDuplicate tanto por el pre-chequeo
// como por el índice único del almacén.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List retorna las categorías; por defecto solo las activas.
func (uc *CategoryUseCase) List(includeInactive bool) (*dto.CategoryListResponse, error) {
	categories, err := uc.repo.List(!includeInactive)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		data = append(data, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Count: len(data), Data: data}, nil
}

// GetByID retorna una categoría por id.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update aplica un parche parcial. Un rename que colisione con otra categoría
// falla con ErrDuplicate.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != category.Name {
			existing, err := uc.repo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Description = description
	}
	if in.Active != nil {
		category.Active = *in.Active
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Deactivate ejecuta el soft delete en cascada: la categoría, sus
// subcategorías y sus productos quedan inactivos. Repetirlo es inocuo y
// reporta ceros para los hijos ya inactivos.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.DeactivateCascadeResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	result, err := uc.runner.Execute(ctx, cascade.DeactivateCategory(id))
	if err != nil {
		return nil, err
	}
	return &dto.DeactivateCascadeResponse{
		Message:                  "categoría desactivada correctamente",
		SubcategoriesDeactivated: result.Subcategories,
		ProductsDeactivated:      result.Products,
	}, nil
}

// Delete ejecuta el hard delete en cascada, hojas primero: productos, luego
// subcategorías, luego la categoría. Irreversible.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*dto.DeleteCascadeResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	subIDs, err := uc.subRepo.ListIDsByCategory(id)
	if err != nil {
		return nil, err
	}
	result, err := uc.runner.Execute(ctx, cascade.DeleteCategory(id, subIDs))
	if err != nil {
		return nil, err
	}
	return &dto.DeleteCascadeResponse{
		Message:              "categoría y descendientes eliminados permanentemente",
		SubcategoriesDeleted: result.Subcategories,
		ProductsDeleted:      result.Products,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
