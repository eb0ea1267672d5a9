package repository

import (
	"time"

	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// OrderRepository acceso a pedidos con sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate obtiene el pedido con sus líneas bloqueando la cabecera,
	// para serializar cancelaciones concurrentes del mismo pedido.
	GetForUpdate(id string) (*entity.Order, error)
	// UpdateStatus cambia el estado y reemplaza la bitácora de notas.
	UpdateStatus(id, status, notes string, updatedAt time.Time) error
}
