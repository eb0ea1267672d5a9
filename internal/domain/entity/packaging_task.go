package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una tarea de empaque.
const (
	PackagingStatusPending    = "pending"
	PackagingStatusInProgress = "in_progress"
	PackagingStatusDone       = "done"
)

// PackagingTask es la unidad de trabajo de empaque físico de una producción
// aprobada. Existe exactamente una por orden de producción (índice único
// sobre production_run_id); una re-aprobación actualiza la cantidad y
// devuelve la tarea a pending.
type PackagingTask struct {
	ID              string
	CompanyID       string
	ProductionRunID string
	ProductID       string
	ProductName     string
	QtyToPackage    decimal.Decimal
	QtyPackaged     decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
