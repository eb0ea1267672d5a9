package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
	"github.com/tu-usuario/gestion-pro/internal/domain/repository"
)

// CancelOrderUseCase cancela un pedido reponiendo el stock que sus líneas
// consumieron. El reverso se expresa como movimientos cancellation_restore
// nuevos, nunca mutando ni borrando los descuentos originales: la historia
// queda auditable y la operación es naturalmente idempotente una vez pasa la
// guarda de estado.
type CancelOrderUseCase struct {
	txRunner TxRunner
	ledger   Ledger
}

// NewCancelOrderUseCase construye el caso de uso.
func NewCancelOrderUseCase(txRunner TxRunner, ledger Ledger) *CancelOrderUseCase {
	return &CancelOrderUseCase{txRunner: txRunner, ledger: ledger}
}

// CancelOrder ejecuta la cancelación en una sola transacción: bloquea el
// pedido, verifica las guardas de estado, repone el stock de cada línea con
// su movimiento de reverso y marca el pedido como cancelado con nota de
// auditoría. Si cualquier sub-paso falla, ningún producto queda repuesto.
func (uc *CancelOrderUseCase) CancelOrder(ctx context.Context, companyID, userID, orderID, reason string) (*dto.CancelOrderResponse, error) {
	var updates, movements int

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
		}
		if order.CompanyID != companyID {
			return domain.ErrForbidden
		}
		// Guardas de estado: evitan doble compensación y cancelar pedidos
		// que ya salieron a reparto.
		if order.Status == entity.OrderStatusCancelled {
			return fmt.Errorf("%w: pedido %s", domain.ErrAlreadyCancelled, order.Number)
		}
		if !order.IsCancellable() {
			return fmt.Errorf("%w: pedido %s en estado %s",
				domain.ErrNotCancellable, order.Number, order.Status)
		}

		now := time.Now()
		movementReason := fmt.Sprintf("cancelación del pedido %s", order.Number)
		if reason != "" {
			movementReason += ": " + reason
		}
		for _, item := range order.Items {
			_, err := uc.ledger.RecordMovementInTx(movRepo, productRepo, companyID, userID, stock.MovementInput{
				ProductID: item.ProductID,
				Type:      entity.MovementTypeCancellationRestore,
				Quantity:  item.Quantity,
				Reason:    movementReason,
				RefID:     order.ID,
				RefType:   entity.MovementRefOrder,
			}, now)
			if err != nil {
				return err
			}
			updates++
			movements++
		}

		note := fmt.Sprintf("[%s] pedido cancelado", now.Format("2006-01-02 15:04"))
		if reason != "" {
			note += ": " + reason
		}
		notes := order.Notes
		if notes != "" {
			notes += "\n"
		}
		notes += note
		return orderRepo.UpdateStatus(order.ID, entity.OrderStatusCancelled, notes, now)
	})
	if err != nil {
		return nil, err
	}

	return &dto.CancelOrderResponse{
		Success:             true,
		Message:             "pedido cancelado y stock repuesto",
		StockUpdatesCount:   updates,
		StockMovementsCount: movements,
	}, nil
}
