package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle es un vehículo de reparto del registro de flota.
// RegionTag es una etiqueta libre ("norte", "zona sur", ...) que se compara
// contra la región del pedido al asignar rutas.
type Vehicle struct {
	ID         string
	CompanyID  string
	Plate      string
	CapacityKg decimal.Decimal
	RegionTag  string
	DriverName string
	CreatedAt  time.Time
}
