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
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/application/production"
	approuting "github.com/tu-usuario/gestion-pro/internal/application/routing"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	domrouting "github.com/tu-usuario/gestion-pro/internal/domain/routing"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/maps"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
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

	movementRepo := postgres.NewStockMovementRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := stock.NewLedgerUseCase(txRunner, movementRepo)
	workflowUC := production.NewWorkflowUseCase(txRunner, ledgerUC)
	cancelOrderUC := orders.NewCancelOrderUseCase(txRunner, ledgerUC)
	confirmSaleUC := orders.NewConfirmSaleUseCase(txRunner, ledgerUC)

	classifier := domrouting.NewClassifier(domrouting.DefaultRules())
	linkBuilder := maps.NewGoogleMapsLinkBuilder(cfg.Routing.MapsBaseURL)
	allocateUC := approuting.NewAllocateUseCase(
		vehicleRepo, classifier, linkBuilder,
		decimal.NewFromInt(int64(cfg.Routing.AvgStopWeightKg)),
	)

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
		Title:    "Gestión Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:      ledgerUC,
		Workflow:    workflowUC,
		CancelOrder: cancelOrderUC,
		ConfirmSale: confirmSaleUC,
		Allocate:    allocateUC,
		JWTSecret:   cfg.JWT.Secret,
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
