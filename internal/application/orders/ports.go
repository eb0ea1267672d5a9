package orders

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios de pedidos e inventario. La cancelación aplica todos los
// reversos de stock y el cambio de estado del pedido como un solo lote:
// cualquier fallo parcial deshace el conjunto completo.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Ledger registra movimientos de stock dentro de la transacción del caller.
// Implementado por stock.LedgerUseCase.
type Ledger interface {
	RecordMovementInTx(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		companyID, userID string,
		input stock.MovementInput,
		now time.Time,
	) (*entity.StockMovement, error)
}
