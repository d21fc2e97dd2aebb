package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-api/internal/application/auth"
	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-api/pkg/config"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Reconciliación de esquema al arranque: crea tablas e índices faltantes.
	if err := postgres.Reconcile(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("reconciliación de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	statisticsRepo := postgres.NewStatisticsRepository(pool)
	cascadeRunner := postgres.NewCascadeRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:         cfg.JWT.Secret,
		ExpSeconds:     cfg.JWT.ExpirationSeconds,
		RefreshSeconds: cfg.JWT.RefreshSeconds,
		Issuer:         cfg.JWT.Issuer,
		BcryptCost:     cfg.Auth.BcryptCost,
	})
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.BcryptCost)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, subcategoryRepo, cascadeRunner)
	subcategoryUC := usecase.NewSubcategoryUseCase(subcategoryRepo, categoryRepo, productRepo, cascadeRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subcategoryRepo)
	statisticsUC := usecase.NewStatisticsUseCase(statisticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CategoryUC:    categoryUC,
		SubcategoryUC: subcategoryUC,
		ProductUC:     productUC,
		StatisticsUC:  statisticsUC,
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
