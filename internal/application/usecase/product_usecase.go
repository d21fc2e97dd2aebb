package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-api/internal/application/dto"
	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/access"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos, la hoja de la jerarquía. Mantiene el
// invariante de pertenencia: la subcategoría referenciada debe pertenecer a
// la categoría referenciada, al crear y en cualquier parche que toque alguna
// de las dos referencias.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	subRepo      repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, subRepo repository.SubcategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, subRepo: subRepo}
}

// Create crea un producto. Todos los campos son obligatorios; la categoría
// debe existir y la subcategoría debe existir bajo esa categoría. CreatedBy
// se toma de la identidad autenticada.
func (uc *ProductUseCase) Create(caller access.Identity, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if name == "" || description == "" || in.Price == nil || in.Stock == nil || in.Category == "" || in.Subcategory == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	subcategory, err := uc.subRepo.GetByIDAndCategory(in.Subcategory, in.Category)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, domain.ErrSubcategoryMismatch
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   description,
		Price:         *in.Price,
		Stock:         *in.Stock,
		CategoryID:    in.Category,
		SubcategoryID: in.Subcategory,
		CreatedBy:     caller.UserID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(created, false), nil
}

// List retorna los productos; por defecto solo los activos. Para un
// solicitante auxiliar se oculta quién creó cada producto.
func (uc *ProductUseCase) List(caller access.Identity, includeInactive bool) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(!includeInactive)
	if err != nil {
		return nil, err
	}
	hideCreator := access.HidesProductCreator(caller)
	data := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, *toProductResponse(p, hideCreator))
	}
	return &dto.ProductListResponse{Count: len(data), Data: data}, nil
}

// GetByID retorna un producto por id con los nombres de sus padres.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product, false), nil
}

// Update aplica un parche parcial. Si el parche toca category o subcategory,
// la relación de pertenencia se revalida con la categoría efectiva: la nueva
// si viene en el parche, la existente si no.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	product := existing.Product

	if in.Category != nil || in.Subcategory != nil {
		effectiveCategory := product.CategoryID
		if in.Category != nil {
			effectiveCategory = *in.Category
			parent, err := uc.categoryRepo.GetByID(effectiveCategory)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, domain.ErrNotFound
			}
		}
		effectiveSubcategory := product.SubcategoryID
		if in.Subcategory != nil {
			effectiveSubcategory = *in.Subcategory
		}
		subcategory, err := uc.subRepo.GetByIDAndCategory(effectiveSubcategory, effectiveCategory)
		if err != nil {
			return nil, err
		}
		if subcategory == nil {
			return nil, domain.ErrSubcategoryMismatch
		}
		product.CategoryID = effectiveCategory
		product.SubcategoryID = effectiveSubcategory
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(&product); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(updated, false), nil
}

// Deactivate marca el producto como inactivo (soft delete a nivel hoja).
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

// Delete elimina el producto permanentemente.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *repository.ProductWithNames, hideCreator bool) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Stock:           p.Stock,
		Category:        p.CategoryID,
		CategoryName:    p.CategoryName,
		Subcategory:     p.SubcategoryID,
		SubcategoryName: p.SubcategoryName,
		CreatedBy:       p.CreatedByUsername,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if hideCreator {
		resp.CreatedBy = ""
	}
	return resp
}
