package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU de la empresa.
// Stock es el inventario disponible actual; solo se modifica a través del
// libro de movimientos (application/stock), nunca directamente desde otros
// casos de uso.
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // código único por empresa
	Name       string
	UnitWeight decimal.Decimal // peso unitario en kg (para reparto)
	Stock      decimal.Decimal // inventario disponible, nunca negativo
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
