package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/auth"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/internal/domain/entity"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	StatisticsUC  *usecase.StatisticsUseCase
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API. Crear y actualizar requieren rol
// admin o coordinador; borrar requiere admin. Las lecturas solo requieren
// un token válido (el alcance por rol lo aplican los casos de uso).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	canWrite := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	canDelete := RequireRole(entity.RoleAdmin)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", canWrite, userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", canDelete, userHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canDelete, categoryHandler.Delete)

	// Subcategories (protegido)
	subcategories := protected.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC, deps.Log)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Get("/:id/products", subcategoryHandler.ListProducts)
	subcategories.Post("/", canWrite, subcategoryHandler.Create)
	subcategories.Put("/:id", canWrite, subcategoryHandler.Update)
	subcategories.Delete("/:id", canDelete, subcategoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canDelete, productHandler.Delete)

	// Statistics (protegido)
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC, deps.Log)
	protected.Get("/statistics", statisticsHandler.Get)
}
