package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// MovementFilter filtros de la consulta de auditoría de movimientos.
// Los campos vacíos/nil no filtran.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// StockMovementRepository acceso al libro de movimientos (append-only).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos de la empresa en orden cronológico inverso.
	List(companyID string, filter MovementFilter) ([]*entity.StockMovement, error)
	// ListByRef devuelve los movimientos originados por una entidad de
	// negocio (pedido u orden de producción), en orden de creación.
	ListByRef(companyID, refType, refID string) ([]*entity.StockMovement, error)
}
