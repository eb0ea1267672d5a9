package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock (value object conceptual).
const (
	MovementTypeInbound             = "inbound"              // entrada de mercancía
	MovementTypeOutbound            = "outbound"             // salida de mercancía
	MovementTypeAdjustment          = "adjustment"           // ajuste positivo de inventario
	MovementTypeProductionOutput    = "production_output"    // producción aprobada que entra a stock
	MovementTypeSaleDeduction       = "sale_deduction"       // descuento por venta confirmada
	MovementTypeCancellationRestore = "cancellation_restore" // reverso por cancelación de pedido
)

// Tipos de referencia de un movimiento (entidad de negocio que lo originó).
const (
	MovementRefOrder         = "order"
	MovementRefProductionRun = "production_run"
)

// StockMovement es una fila del libro de movimientos: append-only e inmutable
// una vez escrita. PreviousStock y NewStock se capturan de la misma lectura
// bloqueada que actualiza el producto, de modo que reproducir los movimientos
// en orden de creación reconstruye el stock actual.
type StockMovement struct {
	ID            string
	CompanyID     string
	ProductID     string
	Type          string          // uno de los MovementType*
	Quantity      decimal.Decimal // siempre positiva; el signo lo da el tipo
	PreviousStock decimal.Decimal
	NewStock      decimal.Decimal
	Reason        string
	RefID         string // opcional: id del pedido u orden de producción
	RefType       string // opcional: order | production_run
	CreatedAt     time.Time
	CreatedBy     string // UserID
}

// MovementSign devuelve +1 o -1 según el tipo de movimiento, o 0 si el tipo
// no es válido. Los ajustes negativos se registran como outbound.
func MovementSign(movementType string) int {
	switch movementType {
	case MovementTypeInbound, MovementTypeAdjustment,
		MovementTypeProductionOutput, MovementTypeCancellationRestore:
		return 1
	case MovementTypeOutbound, MovementTypeSaleDeduction:
		return -1
	default:
		return 0
	}
}
