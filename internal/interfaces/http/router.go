package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/orders"
	"github.com/tu-usuario/gestion-pro/internal/application/production"
	"github.com/tu-usuario/gestion-pro/internal/application/routing"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger      *stock.LedgerUseCase
	Workflow    *production.WorkflowUseCase
	CancelOrder *orders.CancelOrderUseCase
	ConfirmSale *orders.ConfirmSaleUseCase
	Allocate    *routing.AllocateUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo el dominio va detrás del
// middleware de autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Libro de movimientos de stock
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger)
	stockGroup.Post("/movements", stockHandler.RecordMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)

	// Flujo de producción
	productionGroup := api.Group("/production")
	productionHandler := NewProductionHandler(deps.Workflow)
	productionGroup.Post("/runs/:id/start", productionHandler.Start)
	productionGroup.Post("/runs/:id/finish", productionHandler.Finish)

	// Pedidos
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.CancelOrder, deps.ConfirmSale)
	ordersGroup.Post("/:id/confirm-sale", orderHandler.ConfirmSale)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)

	// Rutas de reparto
	routesGroup := api.Group("/routes")
	routingHandler := NewRoutingHandler(deps.Allocate)
	routesGroup.Post("/allocate", routingHandler.Allocate)
}
