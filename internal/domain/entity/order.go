package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusNew          = "new"
	OrderStatusInProduction = "in_production"
	OrderStatusReadyForSale = "ready_for_sale"
	OrderStatusSold         = "sold"
	OrderStatusInDelivery   = "in_delivery"
	OrderStatusDelivered    = "delivered"
	OrderStatusCancelled    = "cancelled"
)

// Order es un pedido de cliente con sus líneas. Las líneas son inmutables
// una vez creado el pedido; el estado avanza según el flujo de negocio y la
// cancelación está protegida por el estado actual.
type Order struct {
	ID              string
	CompanyID       string
	Number          string // consecutivo legible, ej. "PED-0042"
	ClientName      string
	DeliveryAddress string
	Status          string
	Notes           string // bitácora de auditoría en texto plano
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem es una línea de pedido (inmutable).
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
}

// IsCancellable indica si el pedido puede cancelarse desde su estado actual.
// Los pedidos entregados o en reparto ya no se cancelan por esta vía.
func (o *Order) IsCancellable() bool {
	switch o.Status {
	case OrderStatusCancelled, OrderStatusDelivered, OrderStatusInDelivery:
		return false
	}
	return true
}
