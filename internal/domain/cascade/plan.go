// Package cascade modela las transiciones en cascada de la jerarquía
// Category → Subcategory → Product como un plan explícito: una lista ordenada
// de pasos {colección, filtro, operación}. El plan se construye aquí como
// valor puro y lo ejecuta un CascadeRunner; eso permite probar la forma del
// plan sin base de datos y ejecutar el plan completo dentro de una
// transacción cuando el almacén lo soporta.
package cascade

// Op es la operación de un paso.
type Op string

const (
	OpDeactivate Op = "deactivate" // soft delete: active/isActive = false
	OpDelete     Op = "delete"     // hard delete: eliminación permanente
)

// Target es la colección sobre la que actúa un paso.
type Target string

const (
	TargetCategories    Target = "categories"
	TargetSubcategories Target = "subcategories"
	TargetProducts      Target = "products"
)

// Filter selecciona las filas afectadas por un paso. Exactamente uno de los
// campos está poblado.
type Filter struct {
	ID             string   // fila única por id
	CategoryID     string   // hijas directas de una categoría
	SubcategoryID  string   // productos de una subcategoría
	SubcategoryIDs []string // productos de un conjunto de subcategorías
}

// Step es un paso del plan.
type Step struct {
	Target Target
	Op     Op
	Filter Filter
}

// Plan es la secuencia ordenada de pasos de una cascada. En hard delete el
// orden es hojas-primero (productos, luego subcategorías, luego la categoría)
// para no dejar referencias colgantes si la ejecución se interrumpe.
type Plan struct {
	Steps []Step
}

// Result cuenta las filas hijas realmente afectadas. Repetir una cascada soft
// sobre un árbol ya inactivo reporta ceros: los pasos solo tocan filas activas.
type Result struct {
	Subcategories int64
	Products      int64
}

// DeactivateCategory arma la cascada soft de una categoría: desactiva sus
// productos, sus subcategorías y finalmente la categoría misma.
func DeactivateCategory(categoryID string) Plan {
	return Plan{Steps: []Step{
		{Target: TargetProducts, Op: OpDeactivate, Filter: Filter{CategoryID: categoryID}},
		{Target: TargetSubcategories, Op: OpDeactivate, Filter: Filter{CategoryID: categoryID}},
		{Target: TargetCategories, Op: OpDeactivate, Filter: Filter{ID: categoryID}},
	}}
}

// DeleteCategory arma la cascada hard de una categoría. subcategoryIDs son las
// subcategorías bajo la categoría: los productos se eliminan tanto por su
// referencia directa a la categoría como por pertenecer a esas subcategorías,
// porque la referencia a categoría del producto está desnormalizada y puede
// divergir.
func DeleteCategory(categoryID string, subcategoryIDs []string) Plan {
	steps := []Step{
		{Target: TargetProducts, Op: OpDelete, Filter: Filter{CategoryID: categoryID}},
	}
	if len(subcategoryIDs) > 0 {
		steps = append(steps, Step{Target: TargetProducts, Op: OpDelete, Filter: Filter{SubcategoryIDs: subcategoryIDs}})
	}
	steps = append(steps,
		Step{Target: TargetSubcategories, Op: OpDelete, Filter: Filter{CategoryID: categoryID}},
		Step{Target: TargetCategories, Op: OpDelete, Filter: Filter{ID: categoryID}},
	)
	return Plan{Steps: steps}
}

// DeactivateSubcategory arma la cascada soft un nivel abajo: desactiva los
// productos de la subcategoría y luego la subcategoría.
func DeactivateSubcategory(subcategoryID string) Plan {
	return Plan{Steps: []Step{
		{Target: TargetProducts, Op: OpDeactivate, Filter: Filter{SubcategoryID: subcategoryID}},
		{Target: TargetSubcategories, Op: OpDeactivate, Filter: Filter{ID: subcategoryID}},
	}}
}

// DeleteSubcategory arma la cascada hard de una subcategoría y sus productos.
func DeleteSubcategory(subcategoryID string) Plan {
	return Plan{Steps: []Step{
		{Target: TargetProducts, Op: OpDelete, Filter: Filter{SubcategoryID: subcategoryID}},
		{Target: TargetSubcategories, Op: OpDelete, Filter: Filter{ID: subcategoryID}},
	}}
}
