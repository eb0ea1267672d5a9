package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// ProductRepository acceso a productos. Las implementaciones pueden estar
// atadas a un pool o a una transacción (ver postgres.Querier).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Es la sección crítica del libro de movimientos: dos movimientos
	// concurrentes sobre el mismo producto se serializan aquí.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe el nuevo stock calculado a partir de la misma
	// lectura bloqueada.
	UpdateStock(id string, stock decimal.Decimal, updatedAt time.Time) error
}
