package repository

import "github.com/tu-usuario/gestion-pro/internal/domain/entity"

// ProductionRunRepository acceso a órdenes de producción.
type ProductionRunRepository interface {
	Create(run *entity.ProductionRun) error
	GetByID(id string) (*entity.ProductionRun, error)
	// GetForUpdate bloquea la fila de la orden para serializar transiciones
	// concurrentes del mismo run (aprobaciones reintentadas incluidas).
	GetForUpdate(id string) (*entity.ProductionRun, error)
	Update(run *entity.ProductionRun) error
}
