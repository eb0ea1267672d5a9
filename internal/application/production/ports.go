package production

import (
	"context"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios que necesita el flujo de producción. La aprobación persiste el
// run, la tarea de empaque y el movimiento de stock como una sola unidad.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		runRepo repository.ProductionRunRepository,
		taskRepo repository.PackagingTaskRepository,
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
