package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción.
const (
	ProductionStatusPending    = "pending"
	ProductionStatusInProgress = "in_progress"
	ProductionStatusCompleted  = "completed"
	ProductionStatusApproved   = "approved"
	ProductionStatusRejected   = "rejected"
)

// ProductionRun es una orden de producción ligada a una línea de pedido.
// Sigue la máquina de estados pending → in_progress → {completed|approved|rejected};
// los estados finales son inmutables y la fila nunca se borra (auditoría).
type ProductionRun struct {
	ID           string
	CompanyID    string
	OrderItemID  string
	ProductID    string
	RequestedQty decimal.Decimal
	ProducedQty  *decimal.Decimal // nil hasta que termina la producción
	Status       string
	StartedAt    *time.Time
	CompletedAt  *time.Time
	ApprovedBy   string // UserID del aprobador (solo en approved)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsTerminal indica si la orden ya llegó a un estado final.
func (r *ProductionRun) IsTerminal() bool {
	switch r.Status {
	case ProductionStatusCompleted, ProductionStatusApproved, ProductionStatusRejected:
		return true
	}
	return false
}
