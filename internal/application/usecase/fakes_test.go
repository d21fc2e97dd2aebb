package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/inventario-api/internal/domain"
	"github.com/jhoicas/inventario-api/internal/domain/cascade"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria compartido por los fakes. Reproduce la semántica que los
// casos de uso esperan del almacén real: ausencia = (nil, nil), cascadas que
// solo cuentan filas que realmente cambiaron de estado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	users         map[string]*entity.User
	categories    map[string]*entity.Category
	subcategories map[string]*entity.Subcategory
	products      map[string]*entity.Product
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         map[string]*entity.User{},
		categories:    map[string]*entity.Category{},
		subcategories: map[string]*entity.Subcategory{},
		products:      map[string]*entity.Product{},
	}
}

// ─── UserRepository ───────────────────────────────────────────────────────────

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.store.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.store.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.store.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.store.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(onlyActive bool, ownerID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if onlyActive && !u.Active {
			continue
		}
		if ownerID != "" && u.ID != ownerID {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Deactivate(id string) error {
	u, ok := r.store.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = false
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.store.users, id)
	return nil
}

// ─── CategoryRepository ───────────────────────────────────────────────────────

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.store.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.store.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.store.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.store.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	if _, ok := r.store.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.store.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(onlyActive bool) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.store.categories {
		if onlyActive && !c.Active {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── SubcategoryRepository ────────────────────────────────────────────────────

type fakeSubcategoryRepo struct{ store *fakeStore }

func (r *fakeSubcategoryRepo) Create(s *entity.Subcategory) error {
	for _, existing := range r.store.subcategories {
		if existing.Name == s.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.store.subcategories[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	s, ok := r.store.subcategories[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubcategoryRepo) GetByName(name string) (*entity.Subcategory, error) {
	for _, s := range r.store.subcategories {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSubcategoryRepo) GetByIDAndCategory(id, categoryID string) (*entity.Subcategory, error) {
	s, ok := r.store.subcategories[id]
	if !ok || s.CategoryID != categoryID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubcategoryRepo) ListIDsByCategory(categoryID string) ([]string, error) {
	var ids []string
	for _, s := range r.store.subcategories {
		if s.CategoryID == categoryID {
			ids = append(ids, s.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeSubcategoryRepo) Update(s *entity.Subcategory) error {
	if _, ok := r.store.subcategories[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.store.subcategories[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) List(onlyActive bool) ([]*repository.SubcategoryWithCategory, error) {
	var out []*repository.SubcategoryWithCategory
	for _, s := range r.store.subcategories {
		if onlyActive && !s.Active {
			continue
		}
		row := &repository.SubcategoryWithCategory{Subcategory: *s}
		if parent, ok := r.store.categories[s.CategoryID]; ok {
			row.CategoryName = parent.Name
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ─── ProductRepository ────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) withNames(p *entity.Product) *repository.ProductWithNames {
	row := &repository.ProductWithNames{Product: *p}
	if c, ok := r.store.categories[p.CategoryID]; ok {
		row.CategoryName = c.Name
	}
	if s, ok := r.store.subcategories[p.SubcategoryID]; ok {
		row.SubcategoryName = s.Name
	}
	if u, ok := r.store.users[p.CreatedBy]; ok {
		row.CreatedByUsername = u.Username
	}
	return row
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*repository.ProductWithNames, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return r.withNames(p), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(onlyActive bool) ([]*repository.ProductWithNames, error) {
	var out []*repository.ProductWithNames
	for _, p := range r.store.products {
		if onlyActive && !p.IsActive {
			continue
		}
		out = append(out, r.withNames(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) ListBySubcategory(subcategoryID string) ([]*repository.ProductWithNames, error) {
	var out []*repository.ProductWithNames
	for _, p := range r.store.products {
		if p.SubcategoryID == subcategoryID {
			out = append(out, r.withNames(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

// ─── CascadeRunner ────────────────────────────────────────────────────────────

// fakeCascadeRunner ejecuta los planes contra el almacén en memoria con la
// misma regla de conteo que el almacén real: desactivar solo cuenta filas que
// estaban activas.
type fakeCascadeRunner struct{ store *fakeStore }

func (r *fakeCascadeRunner) Execute(_ context.Context, plan cascade.Plan) (cascade.Result, error) {
	var result cascade.Result
	for _, step := range plan.Steps {
		switch step.Target {
		case cascade.TargetProducts:
			for id, p := range r.store.products {
				if !productMatches(p, step.Filter) {
					continue
				}
				switch step.Op {
				case cascade.OpDeactivate:
					if p.IsActive {
						p.IsActive = false
						result.Products++
					}
				case cascade.OpDelete:
					delete(r.store.products, id)
					result.Products++
				}
			}
		case cascade.TargetSubcategories:
			for id, s := range r.store.subcategories {
				if !subcategoryMatches(s, step.Filter) {
					continue
				}
				switch step.Op {
				case cascade.OpDeactivate:
					if s.Active {
						s.Active = false
						result.Subcategories++
					}
				case cascade.OpDelete:
					delete(r.store.subcategories, id)
					result.Subcategories++
				}
			}
		case cascade.TargetCategories:
			// La categoría raíz se afecta pero no se cuenta en el resultado.
			for id, c := range r.store.categories {
				if step.Filter.ID != c.ID {
					continue
				}
				switch step.Op {
				case cascade.OpDeactivate:
					c.Active = false
				case cascade.OpDelete:
					delete(r.store.categories, id)
				}
			}
		}
	}
	return result, nil
}

func productMatches(p *entity.Product, f cascade.Filter) bool {
	switch {
	case f.ID != "":
		return p.ID == f.ID
	case f.CategoryID != "":
		return p.CategoryID == f.CategoryID
	case f.SubcategoryID != "":
		return p.SubcategoryID == f.SubcategoryID
	case len(f.SubcategoryIDs) > 0:
		for _, id := range f.SubcategoryIDs {
			if p.SubcategoryID == id {
				return true
			}
		}
	}
	return false
}

func subcategoryMatches(s *entity.Subcategory, f cascade.Filter) bool {
	switch {
	case f.ID != "":
		return s.ID == f.ID
	case f.CategoryID != "":
		return s.CategoryID == f.CategoryID
	}
	return false
}
